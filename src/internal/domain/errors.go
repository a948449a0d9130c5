package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrInvalidCredentials = errors.New("Invalid account number or password")
var ErrInvalidAmount = errors.New("Amount must be a positive number")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrRecipientNotFound = errors.New("Recipient account not found")
