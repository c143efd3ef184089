package utils

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"bitbucket.org/coradatalabs/cora_backend/appctx"
	"github.com/google/uuid"
)

// DereferencePtr returns the pointed-to value or def when the pointer is nil.
func DereferencePtr[T any](ptr *T, def T) T {
	if ptr == nil {
		return def
	}
	return *ptr
}

func Ptr[T any](v T) *T {
	return &v
}

func UniqueSlice[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases and collapses non-alphanumeric runs to single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

var validFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ValidFilename strips path separators and shell-unfriendly characters from
// an uploaded filename so it can be stored on disk safely.
func ValidFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return validFilenameChars.ReplaceAllString(name, "_")
}

func NewCorrelationId() string {
	return uuid.New().String()
}

func FormatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, appctx.ContextKeyToken)
}

func GetCompanyIdFromContext(ctx context.Context) (int, bool) {
	return appctx.GetInt(ctx, appctx.ContextKeyCompanyId)
}

func GetBorrowerIdFromContext(ctx context.Context) (int, bool) {
	return appctx.GetInt(ctx, appctx.ContextKeyBorrowerId)
}

func GetIsStaffFromContext(ctx context.Context) bool {
	v, _ := appctx.GetBool(ctx, appctx.ContextKeyIsStaff)
	return v
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return appctx.Set(ctx, appctx.ContextKeyCorrelationId, correlationId)
}
