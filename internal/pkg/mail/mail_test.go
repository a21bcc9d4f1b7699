package mail

import (
	"careerbridge/internal/api/config"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunWithTimeoutReturnsSendResult(t *testing.T) {
	sendErr := errors.New("relay rejected")

	err := runWithTimeout(func() error { return sendErr }, time.Second)
	assert.ErrorIs(t, err, sendErr)

	err = runWithTimeout(func() error { return nil }, time.Second)
	assert.NoError(t, err)
}

func TestRunWithTimeoutBoundsStalledTransport(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	err := runWithTimeout(func() error {
		<-block
		return nil
	}, 10*time.Millisecond)

	assert.EqualError(t, err, "smtp send timed out")
}

func TestSendRequiresConfiguredHost(t *testing.T) {
	s := NewSender(config.SMTPConfig{})

	err := s.Send(Message{To: "seeker@example.com", Subject: "digest"})
	assert.Error(t, err)
}
