package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	ProfileKeyPrefix = "profile:%d"
	PlanKeyPrefix    = "plan:%s"
	ThemeKey         = "settings:theme"
	ModulesKey       = "settings:modules"
)

const (
	UserTTL     = 5 * time.Minute
	ProfileTTL  = 5 * time.Minute
	PlanTTL     = 10 * time.Minute
	SettingsTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func PlanKey(name string) string {
	return fmt.Sprintf(PlanKeyPrefix, name)
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, ProfileKey(userID))
}

func InvalidatePlan(ctx context.Context, name string) {
	Invalidate(ctx, PlanKey(name))
}

func InvalidateSettings(ctx context.Context) {
	Invalidate(ctx, ThemeKey)
	Invalidate(ctx, ModulesKey)
}
