package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venturechess/portfolio/backend/internal/model/contact"
	"github.com/venturechess/portfolio/backend/internal/service/contactform"
)

var errSubmitFailed = errors.New("submission failed")

// submit: send one inquiry and print the resulting notification.
func (c *cli) submitCmd() *cobra.Command {
	values := make(map[string]*string, len(contact.Fields))

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send an inquiry through the contact form flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := contactform.NewForm(c.client, c.logger)
			for _, field := range contact.Fields {
				if err := form.Set(field, *values[field]); err != nil {
					return err
				}
			}

			note, err := form.Submit(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "%s\n%s\n", note.Title, note.Message)
			if note.IsError() {
				return errSubmitFailed
			}
			return nil
		},
	}

	flagNames := map[string]string{
		contact.FieldName:        "name",
		contact.FieldEmail:       "email",
		contact.FieldPhone:       "phone",
		contact.FieldExperience:  "experience",
		contact.FieldSessionType: "session-type",
		contact.FieldMessage:     "message",
	}
	usage := map[string]string{
		contact.FieldName:        "your name",
		contact.FieldEmail:       "your email address",
		contact.FieldPhone:       "phone number",
		contact.FieldExperience:  "complete-beginner, basic-knowledge, intermediate, advanced or competitive",
		contact.FieldSessionType: "individual, group, tournament-prep, online or offline",
		contact.FieldMessage:     "what you would like to achieve",
	}
	for _, field := range contact.Fields {
		values[field] = cmd.Flags().String(flagNames[field], "", usage[field])
	}
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
