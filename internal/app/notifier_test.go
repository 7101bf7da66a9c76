package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/domain"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
	"github.com/jsamuelsen11/moonhaus-contact-api/mocks"
)

func toAddress(addr string) interface{} {
	return mock.MatchedBy(func(m ports.EmailMessage) bool { return m.To == addr })
}

func stubRenderer(t *testing.T) *mocks.MockTemplateRenderer {
	r := mocks.NewMockTemplateRenderer(t)
	r.EXPECT().Render(mock.Anything, mock.Anything).RunAndReturn(func(name string, d ports.TemplateData) (string, error) {
		return "<p>" + name + ":" + d.Name + ":" + d.Timestamp + "</p>", nil
	}).Maybe()
	return r
}

func TestNotifier_Notify(t *testing.T) {
	t.Parallel()

	t.Run("sends admin notification and user confirmation", func(t *testing.T) {
		t.Parallel()
		sender := mocks.NewMockEmailSender(t)
		m := newMetrics(t)
		n := NewNotifier(sender, stubRenderer(t), NotifierConfig{AdminAddress: adminAddress, Location: madrid(t)}, m, discardLogger())

		var admin, user ports.EmailMessage
		sender.EXPECT().Send(mock.Anything, toAddress(adminAddress)).
			Run(func(_ context.Context, msg ports.EmailMessage) { admin = msg }).
			Return("admin-id", nil)
		sender.EXPECT().Send(mock.Anything, toAddress("ana.perez@test.com")).
			Run(func(_ context.Context, msg ports.EmailMessage) { user = msg }).
			Return("user-id", nil)

		receipt, err := n.Notify(context.Background(), validSubmission())
		if err != nil {
			t.Fatalf("Notify() error = %v", err)
		}
		if receipt.AdminRef != "admin-id" || receipt.UserRef != "user-id" {
			t.Errorf("Notify() receipt = %+v", receipt)
		}
		if admin.Subject != "🌙 Nuevo contacto desde Moonhaus - Ana Pérez" {
			t.Errorf("admin subject = %q", admin.Subject)
		}
		if user.Subject != SubjectUserConfirmation {
			t.Errorf("user subject = %q", user.Subject)
		}
		if user.ToName != "Ana Pérez" {
			t.Errorf("user ToName = %q", user.ToName)
		}
		wantHTML := "<p>admin-notification:Ana Pérez:18 de octubre de 2026, 14:05</p>"
		if admin.HTML != wantHTML {
			t.Errorf("admin HTML = %q, want %q", admin.HTML, wantHTML)
		}
		if !strings.Contains(admin.Text, "+34 600 123 456") {
			t.Errorf("admin text missing phone: %q", admin.Text)
		}
		if got := testutil.CollectAndCount(m.EmailSendDuration); got != 2 {
			t.Errorf("email duration series = %d, want 2", got)
		}
	})

	t.Run("one failed send is a delivery error", func(t *testing.T) {
		t.Parallel()
		sender := mocks.NewMockEmailSender(t)
		n := NewNotifier(sender, stubRenderer(t), NotifierConfig{AdminAddress: adminAddress}, nil, discardLogger())

		sender.EXPECT().Send(mock.Anything, toAddress(adminAddress)).Return("admin-id", nil)
		sender.EXPECT().Send(mock.Anything, toAddress("ana.perez@test.com")).Return("", errors.New("550 mailbox unavailable"))
		sender.EXPECT().Provider().Return("smtp")

		_, err := n.Notify(context.Background(), validSubmission())
		if !errors.Is(err, domain.ErrDelivery) {
			t.Fatalf("Notify() error = %v, want ErrDelivery", err)
		}
		if strings.Contains(err.Error(), "550") {
			t.Errorf("Notify() error leaks transport detail: %v", err)
		}
	})

	t.Run("render failure sends nothing", func(t *testing.T) {
		t.Parallel()
		sender := mocks.NewMockEmailSender(t)
		renderer := mocks.NewMockTemplateRenderer(t)
		n := NewNotifier(sender, renderer, NotifierConfig{AdminAddress: adminAddress}, nil, nil)

		renderer.EXPECT().Render(ports.TemplateAdminNotification, mock.Anything).Return("", errors.New("template: boom"))

		_, err := n.Notify(context.Background(), validSubmission())
		if !errors.Is(err, domain.ErrDelivery) {
			t.Errorf("Notify() error = %v, want ErrDelivery", err)
		}
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestNotifier_SendTest(t *testing.T) {
	t.Parallel()
	sender := mocks.NewMockEmailSender(t)
	n := NewNotifier(sender, stubRenderer(t), NotifierConfig{AdminAddress: adminAddress, Location: madrid(t)}, nil, nil)

	sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(m ports.EmailMessage) bool {
		return m.To == adminAddress && m.Subject == SubjectTest && strings.HasPrefix(m.HTML, "<p>test:")
	})).Return("test-id", nil)

	id, err := n.SendTest(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("SendTest() error = %v", err)
	}
	if id != "test-id" {
		t.Errorf("SendTest() id = %q", id)
	}
}
