package dto

import "time"

type ScheduleInterviewDTO struct {
	ApplicationID string    `json:"applicationId" binding:"required"`
	ScheduledAt   time.Time `json:"scheduledAt" binding:"required"`
	Mode          string    `json:"mode" binding:"required,oneof=onsite video phone"`
	Location      string    `json:"location,omitempty" binding:"omitempty,max=200"`
	MeetingLink   string    `json:"meetingLink,omitempty" binding:"omitempty,max=500"`
	Notes         string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

type RescheduleInterviewDTO struct {
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Notes       string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
}
