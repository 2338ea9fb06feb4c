package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes mapped by Translate.
const (
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgForeignKeyViolation = "23503"
	pgInvalidText         = "22P02"
)

var duplicateKeyDetail = regexp.MustCompile(`Key \(([^)]+)\)=`)

// Translate converts known persistence and validation errors into *AppError.
// Errors it does not recognise are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return Wrap(err, http.StatusBadRequest, validationMessage(validationErrs), KindValidation)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			fields := duplicateFields(pgErr)
			return Wrap(err, http.StatusConflict,
				fmt.Sprintf("Duplicate value entered for field(s): %s", strings.Join(fields, ", ")),
				KindDuplicateKey)
		case pgNotNullViolation:
			return Wrap(err, http.StatusBadRequest,
				fmt.Sprintf("Validation failed: %s is required", pgErr.ColumnName), KindValidation)
		case pgCheckViolation:
			return Wrap(err, http.StatusBadRequest,
				fmt.Sprintf("Validation failed: %s", pgErr.ConstraintName), KindValidation)
		case pgInvalidText:
			return Wrap(err, http.StatusBadRequest, "Invalid identifier or value format", KindBadRequest)
		case pgForeignKeyViolation:
			return Wrap(err, http.StatusConflict,
				fmt.Sprintf("Operation violates reference %s", pgErr.ConstraintName), KindConflict)
		}
		return err
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return Wrap(err, http.StatusBadRequest, "Malformed JSON body", KindBadRequest)
	case errors.As(err, &typeErr):
		return Wrap(err, http.StatusBadRequest,
			fmt.Sprintf("Invalid type for field %s", typeErr.Field), KindBadRequest)
	}

	return err
}

func duplicateFields(pgErr *pgconn.PgError) []string {
	if m := duplicateKeyDetail.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
		parts := strings.Split(m[1], ",")
		fields := make([]string, 0, len(parts))
		for _, p := range parts {
			fields = append(fields, strings.TrimSpace(p))
		}
		return fields
	}
	if pgErr.ConstraintName != "" {
		return []string{pgErr.ConstraintName}
	}
	return []string{"unknown"}
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return "Validation failed: " + strings.Join(msgs, "; ")
}
