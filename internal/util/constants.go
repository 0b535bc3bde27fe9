package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 文件上传相关常量
const (
	MimeVideo       = "video/"
	MimeImage       = "image/"
	MimeOctetStream = "application/octet-stream"
)

// 对象存储中的路径布局
const (
	UGCWordDir   = "ugc/words"
	UGCImageName = "image.png"
	SignVideoDir = "signs"
)

// 手语录像状态
const (
	SignStatusApproved = "approved"
	SignStatusPending  = "pending"
	SignStatusDeleted  = "deleted"
)

// 视频处理参数：720x720 居中补边，30fps，无音轨
const (
	SignVideoSize = 720
	SignVideoFPS  = 30
	SignVideoCRF  = 23
)

var (
	AllowedImageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}
	AllowedVideoTypes = []string{"video/webm", "video/mp4"}
)
