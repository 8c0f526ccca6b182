// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceMismatch       = InvalidError("balance does not match subtree heights")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = InvalidError("node count mismatch")
	ErrDatabaseClosed        = ProcessError("database is closed")
	ErrInvalidArgumentCount  = InvalidError("invalid number of arguments")
	ErrInvalidCommand        = InvalidError("invalid command")
	ErrInvalidKeyType        = InvalidError("key must be a string key")
	ErrInvalidLoggerChannel  = ProcessError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidValueType      = InvalidError("value must be a string or byte slice")
	ErrNotADirectory         = InvalidError("path is not a directory")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotPlainFileName      = InvalidError("file name must not contain a path")
	ErrOrderViolation        = InvalidError("key order violated")
	ErrParentLink            = InvalidError("parent link inconsistent")
	ErrUnbalanced            = InvalidError("balance out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
