package notify

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/vida-hq/vida-admin/internal/config"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (r *recordingSender) Send(to, subject, htmlBody string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sent = append(r.sent, to)

	return r.err
}

func TestDispatcherDeliversInBackground(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender)

	d.Dispatch("a@x.com", "subject", "<p>body</p>")
	d.Dispatch("b@x.com", "subject", "<p>body</p>")
	d.Wait()

	if len(sender.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sender.sent))
	}
}

func TestDispatcherSwallowsSendErrors(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(sender)

	// must not panic or propagate
	d.Dispatch("a@x.com", "subject", "<p>body</p>")
	d.Wait()

	if len(sender.sent) != 1 {
		t.Fatalf("sender invoked %d times, want 1", len(sender.sent))
	}
}

func TestRegistrationBody(t *testing.T) {
	body := RegistrationBody("http://localhost:3000", "a+b@x.com")

	if !strings.Contains(body, "http://localhost:3000/reset-password?email=a%2Bb%40x.com") {
		t.Errorf("body missing escaped registration link: %s", body)
	}

	if !strings.Contains(body, "Welcome to Vida!") {
		t.Error("body missing welcome copy")
	}
}

func TestSMTPSenderRejectsMissingConfig(t *testing.T) {
	s := NewSMTPSender(config.Email{})

	if err := s.Send("a@x.com", "s", "b"); err == nil {
		t.Fatal("expected error for missing smtp config")
	}
}

func TestSMTPSenderRejectsEmptyRecipient(t *testing.T) {
	s := NewSMTPSender(config.Email{Host: "h", User: "u", From: "f@x.com"})

	if err := s.Send("  ", "s", "b"); err == nil {
		t.Fatal("expected error for empty recipient")
	}
}
