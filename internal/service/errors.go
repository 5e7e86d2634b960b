package service

import "fmt"

var (
	ErrCannotCreateLog = fmt.Errorf("cannot create log")
	ErrLogNotFound     = fmt.Errorf("log entry not found")
	ErrRecordNotFound  = fmt.Errorf("record not found")

	ErrInvalidPageSize  = fmt.Errorf("per_page must be positive")
	ErrInvalidHours     = fmt.Errorf("hours must be positive")
	ErrInvalidChartType = fmt.Errorf("invalid chart type")

	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrAccountLocked      = fmt.Errorf("account is temporarily locked")
	ErrInvalidToken       = fmt.Errorf("invalid token")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")

	ErrWrongPassword    = fmt.Errorf("current password is incorrect")
	ErrPasswordMismatch = fmt.Errorf("new passwords do not match")
	ErrPasswordTooShort = fmt.Errorf("password must be at least 8 characters long")
)
