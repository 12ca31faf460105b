package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"runar/errors"
)

var validate = validator.New()

// SendPairwiseCommand asks to deliver a private message to one recipient.
// Speaker is optional; nil means the sender speaks as themselves.
type SendPairwiseCommand struct {
	RecipientID string `validate:"required"`
	Content     string `validate:"required"`
	Speaker     *Speaker
}

func (c SendPairwiseCommand) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return errors.ErrEmptyContent
	}
	return validate.Struct(c)
}

// SendGroupCommand asks to deliver a message to an existing group.
type SendGroupCommand struct {
	GroupID string `validate:"required"`
	Content string `validate:"required"`
	Speaker *Speaker
}

func (c SendGroupCommand) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return errors.ErrEmptyContent
	}
	return validate.Struct(c)
}

// CreateGroupCommand asks to create a named group. The creator is always
// added to the member set, regardless of the selection.
type CreateGroupCommand struct {
	Name      string   `validate:"required"`
	MemberIDs []string `validate:"min=1"`
}

func (c CreateGroupCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.ErrEmptyGroupName
	}
	if len(c.MemberIDs) == 0 {
		return errors.ErrNoMembers
	}
	return validate.Struct(c)
}
