package service

import "errors"

var (
	ErrRoomNotFound         = errors.New("room not found or expired")
	ErrRoomNameTaken        = errors.New("an active room with this name already exists")
	ErrInvalidRoomPassword  = errors.New("incorrect room password")
	ErrNotRoomHost          = errors.New("only the host can advance the station")
	ErrInvalidStation       = errors.New("station must be between 1 and 14")
	ErrInvalidInput         = errors.New("invalid input")
	ErrStationNotFound      = errors.New("station not found")
	ErrIntroNotFound        = errors.New("intro not found")
	ErrInvalidSeed          = errors.New("invalid seed data")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInternalServer       = errors.New("internal server error")
)
