// Package audience registers newsletter subscribers into an SES contact list.
package audience

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"tar1ksite/internal/domain"
)

// Config holds configuration for the SES contact-list registrar.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	ContactListName string
}

type sesRegistrar struct {
	client   *sesv2.Client
	listName string
}

// NewSESRegistrar returns an AudienceRegistrar backed by an SES contact list,
// or nil when no list name is configured (the caller falls back to operator
// notification emails).
func NewSESRegistrar(config Config) domain.AudienceRegistrar {
	if config.ContactListName == "" {
		return nil
	}
	awsCfg := aws.Config{
		Region: config.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				config.AccessKeyID,
				config.SecretAccessKey,
				"",
			),
		),
	}
	return &sesRegistrar{
		client:   sesv2.NewFromConfig(awsCfg),
		listName: config.ContactListName,
	}
}

func (r *sesRegistrar) RegisterContact(ctx context.Context, email string) error {
	_, err := r.client.CreateContact(ctx, &sesv2.CreateContactInput{
		ContactListName: aws.String(r.listName),
		EmailAddress:    aws.String(email),
	})
	if err != nil {
		// Re-subscribing an existing address is a success, matching the
		// idempotent behavior of the submission stores.
		var exists *types.AlreadyExistsException
		if errors.As(err, &exists) {
			log.Printf("[AUDIENCE] Contact %s already in list %s", email, r.listName)
			return nil
		}
		return fmt.Errorf("failed to register contact in SES list: %w", err)
	}
	log.Printf("[AUDIENCE] Contact %s registered in list %s", email, r.listName)
	return nil
}
