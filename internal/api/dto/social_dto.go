package dto

// FollowStatsDTO 粉丝/关注计数
type FollowStatsDTO struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// FollowStatusDTO 是否已关注
type FollowStatusDTO struct {
	IsFollowing bool `json:"is_following"`
}

// FavoriteStatusDTO 是否已收藏
type FavoriteStatusDTO struct {
	IsFavorited bool `json:"is_favorited"`
}
