package consts

const (
	UserFollowerCountKey  = "user:follower:count:"
	UserFollowingCountKey = "user:following:count:"
	SharedStoryKey        = "story:shared:"
	TokenDenylistKey      = "auth:denylist:"
)
