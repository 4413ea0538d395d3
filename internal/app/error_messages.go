// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// idea-backlog HTTP handlers and middleware.
//
// The values are part of the public error contract: clients match on them,
// so they never change between releases.
package app

const (
	// CodeNotFound is the code of the not-found envelope.
	CodeNotFound = "not_found"

	// CodeValidationError is the code of the request validation envelope.
	CodeValidationError = "validation_error"

	// CodeInternalError is the code of the envelope for unclassified failures.
	CodeInternalError = "INTERNAL_ERROR"

	// MsgUnexpectedError is the only message ever shown for an internal error.
	MsgUnexpectedError = "Unexpected error"

	// ProblemTypeBadInput is the problem type of a business rule violation.
	ProblemTypeBadInput = "about:blank#bad-input"

	// ProblemTitleBadRequest is the fixed title of the bad-input problem.
	ProblemTitleBadRequest = "Bad Request"
)
