package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/spf13/viper"

	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
)

var client *ses.Client

// Init creates the SES client. When AWS configuration is absent the mailer
// stays nil and Notify becomes a no-op, mirroring the optional-Redis behavior.
func Init() {
	region := viper.GetString("AWS_REGION")
	if region == "" {
		logger.Get().WithComponent("mailer").Info("AWS_REGION not configured, contact notifications disabled")
		return
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		logger.Get().WithComponent("mailer").Warn("Failed to load AWS config, contact notifications disabled", logger.Err(err))
		return
	}
	client = ses.NewFromConfig(cfg)
}

// Notify sends a plain-text notification email to the configured admin address.
// Failures are logged and swallowed; a lost notification must never fail the
// request that triggered it.
func Notify(subject, body string) {
	if client == nil {
		return
	}

	to := viper.GetString("CONTACT_NOTIFY_EMAIL")
	from := viper.GetString("CONTACT_FROM_EMAIL")
	if to == "" || from == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		logger.Get().WithComponent("mailer").Warn("Failed to send notification email", logger.Err(err))
		return
	}

	logger.Get().WithComponent("mailer").Info("Notification email sent", logger.Email(to))
}

// FormatContactMessage renders the notification body for an inbound message.
func FormatContactMessage(name, email, phone, message string) string {
	return fmt.Sprintf("New contact message\n\nName: %s\nEmail: %s\nPhone: %s\n\n%s\n", name, email, phone, message)
}
