package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid        = errors.New("invalid parameters")
	ErrMissingPrompt       = errors.New("prompt is required")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrStoryNotFound       = errors.New("story not found")
	ErrGenerationLimit     = errors.New("daily story limit reached")
	ErrShareLimit          = errors.New("You can only share 1 story per day")
	ErrAlreadyFavorited    = errors.New("already favorited")
	ErrNotFavorited        = errors.New("not favorited")
	ErrFollowSelf          = errors.New("cannot follow yourself")
	ErrAlreadyFollowing    = errors.New("already following")
	ErrNotFollowing        = errors.New("not following")
	ErrAlreadyShared       = errors.New("story already shared to the feed")
	ErrEmptyContent        = errors.New("content is empty")
	ErrPublicStoryNotFound = errors.New("feed post not found")
	ErrBillingProvider     = errors.New("billing provider unavailable")
	UnauthorizedError      = errors.New("unauthorized")
	UnExpectedError        = errors.New("unexpected error, please retry later")
)

// ErrorMap 业务错误到 HTTP 状态码的唯一映射，边界层一次性解码
var ErrorMap = map[error]int{
	ErrParamInvalid:        http.StatusBadRequest,
	ErrMissingPrompt:       http.StatusBadRequest,
	ErrUserNotFound:        http.StatusNotFound,
	ErrEmailExists:         http.StatusBadRequest,
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrStoryNotFound:       http.StatusNotFound,
	ErrGenerationLimit:     http.StatusTooManyRequests,
	ErrShareLimit:          http.StatusTooManyRequests,
	ErrAlreadyFavorited:    http.StatusBadRequest,
	ErrNotFavorited:        http.StatusNotFound,
	ErrFollowSelf:          http.StatusBadRequest,
	ErrAlreadyFollowing:    http.StatusBadRequest,
	ErrNotFollowing:        http.StatusNotFound,
	ErrAlreadyShared:       http.StatusBadRequest,
	ErrEmptyContent:        http.StatusBadRequest,
	ErrPublicStoryNotFound: http.StatusNotFound,
	ErrBillingProvider:     http.StatusInternalServerError,
	UnauthorizedError:      http.StatusUnauthorized,
	UnExpectedError:        http.StatusInternalServerError,
}
