package engine

import "errors"

// All engine errors are non-fatal and locally recoverable: every command is a
// validate-then-apply step, and a rejected command leaves the session exactly
// as it was. Callers re-prompt the user.
var (
	ErrInvalidPhaseTransition  = errors.New("command is not valid in the current phase")
	ErrAlreadyDecided          = errors.New("participant already made the initial choice")
	ErrTooManyOptions          = errors.New("no more than three options may be selected")
	ErrInsufficientFunds       = errors.New("pending selection cost exceeds available money")
	ErrMissingInvestmentAmount = errors.New("invest selected without a valid amount")
	ErrOutOfRangeConfig        = errors.New("session parameters out of supported range")
	ErrUnknownOption           = errors.New("unknown round-1 option")
	ErrUnknownChoice           = errors.New("initial choice must be A or B")
	ErrInvestNotSelected       = errors.New("invest is not part of the pending selection")
)
