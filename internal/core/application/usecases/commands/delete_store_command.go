package commands

import (
	"errors"

	"lensdispatch/internal/pkg/errs"
	"lensdispatch/internal/pkg/guard"
)

var ErrDeleteStoreCommandIsNotConstructed = errors.New(
	"DeleteStoreCommand must be created via NewDeleteStoreCommand constructor",
)

// DeleteStoreCommand represents a request to remove a store from the
// directory. Removal is refused while any order still references the store.
type DeleteStoreCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewDeleteStoreCommand creates a command to delete a store by its code.
func NewDeleteStoreCommand(code string) (DeleteStoreCommand, error) {
	command := DeleteStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCode(code); err != nil {
		return DeleteStoreCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteStoreCommandIsNotConstructed if validation fails.
func (c DeleteStoreCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStoreCommandIsNotConstructed)
}

// Code returns the store business code from the command.
func (c DeleteStoreCommand) Code() string {
	return c.code
}

func (c *DeleteStoreCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
