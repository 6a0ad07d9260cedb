package domain

import "errors"

var (
	ErrConfiguration  = errors.New("configuration error")
	ErrNothingToSave  = errors.New("nothing to save")
	ErrRequestFailure = errors.New("chat completion request failed")
	ErrNoteNotFound   = errors.New("note not found")
	ErrNoteExists     = errors.New("note already exists")
	ErrBusy           = errors.New("request already in flight")
	ErrNotActive      = errors.New("no interview in progress")
	ErrEmptyMessage   = errors.New("empty message")
)
