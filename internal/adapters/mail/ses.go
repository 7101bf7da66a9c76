package mail

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// sesAPI is the subset of *sesv2.Client used here.
type sesAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
	GetAccount(ctx context.Context, in *sesv2.GetAccountInput, optFns ...func(*sesv2.Options)) (*sesv2.GetAccountOutput, error)
}

// SESSender sends mail through Amazon SES v2. Credentials come from the
// default AWS chain.
type SESSender struct {
	client sesAPI
	from   Sender
}

// NewSESSender loads the AWS configuration for region and creates a sender.
func NewSESSender(ctx context.Context, region string, from Sender) (*SESSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return &SESSender{client: sesv2.NewFromConfig(awsCfg), from: from}, nil
}

// Send delivers msg and returns the SES message ID.
func (s *SESSender) Send(ctx context.Context, msg ports.EmailMessage) (string, error) {
	fromAddr := (&mail.Address{Name: s.from.Name, Address: s.from.Address}).String()
	toAddr := (&mail.Address{Name: msg.ToName, Address: msg.To}).String()

	body := &types.Body{}
	if msg.Text != "" {
		body.Text = &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")}
	}
	if msg.HTML != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")}
	}

	out, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddr),
		Destination:      &types.Destination{ToAddresses: []string{toAddr}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body:    body,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("ses send: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}

// Verify checks credentials and that sending is enabled for the account.
func (s *SESSender) Verify(ctx context.Context) error {
	out, err := s.client.GetAccount(ctx, &sesv2.GetAccountInput{})
	if err != nil {
		return fmt.Errorf("ses verify: %w", err)
	}
	if !out.SendingEnabled {
		return errors.New("ses verify: sending is disabled for this account")
	}
	return nil
}

// Provider returns "ses".
func (s *SESSender) Provider() string { return ProviderSES }
