package services

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all services. Handlers map these to HTTP
// statuses with errors.Is; anything else is an internal error.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrProjectNotFound  = fmt.Errorf("project not found: %w", ErrNotFound)
	ErrNewsNotFound     = fmt.Errorf("news entry not found: %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user not found: %w", ErrNotFound)
	ErrCommentNotFound  = fmt.Errorf("comment not found: %w", ErrNotFound)
	ErrReactionNotFound = fmt.Errorf("reaction not found: %w", ErrNotFound)

	ErrNotCommentOwner   = fmt.Errorf("not the comment owner: %w", ErrForbidden)
	ErrCommentDeleteDeny = fmt.Errorf("not allowed to delete this comment: %w", ErrForbidden)

	ErrUserExists     = fmt.Errorf("email or pseudo already taken: %w", ErrConflict)
	ErrReactionExists = fmt.Errorf("reaction already recorded: %w", ErrConflict)

	ErrInvalidParent = fmt.Errorf("parent comment does not belong to this project: %w", ErrInvalidInput)
)
