package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// VideoInfo 存储视频信息
type VideoInfo struct {
	Duration float64 `json:"duration"` // 视频时长（秒）
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Format   string  `json:"format"`
	Size     int64   `json:"size"`
}

// GetVideoInfo 使用ffmpeg-go库获取视频信息
func GetVideoInfo(videoPath string) (*VideoInfo, error) {
	fileInfo, err := os.Stat(videoPath)
	if err != nil {
		return nil, fmt.Errorf("video file not found: %w", err)
	}

	jsonOutput, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return nil, fmt.Errorf("probe video: %w", err)
	}
	return parseProbeOutput(jsonOutput, fileInfo.Size())
}

func parseProbeOutput(jsonOutput string, fallbackSize int64) (*VideoInfo, error) {
	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"streams"`
		Format struct {
			Duration string `json:"duration"`
			Size     string `json:"size"`
			Format   string `json:"format_name"`
		} `json:"format"`
	}

	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("parse probe output: %w", err)
	}

	info := &VideoInfo{Format: "unknown"}
	for _, stream := range result.Streams {
		if stream.CodecType == "video" {
			info.Width = stream.Width
			info.Height = stream.Height
			break
		}
	}

	if d, err := strconv.ParseFloat(result.Format.Duration, 64); err == nil {
		info.Duration = d
	}
	info.Size = fallbackSize
	if s, err := strconv.ParseInt(result.Format.Size, 10, 64); err == nil {
		info.Size = s
	}
	if result.Format.Format != "" {
		info.Format = strings.Split(result.Format.Format, ",")[0]
	}
	return info, nil
}

// SignVideoStream 构建手语视频的转码流水线：
// 等比缩放到 720x720 内并居中补边，30fps，去除音轨，H.264 + faststart 以便网页循环播放
func SignVideoStream(inputPath, outputPath string) *ffmpeg.Stream {
	size := strconv.Itoa(SignVideoSize)
	vf := fmt.Sprintf("scale=%s:%s:force_original_aspect_ratio=decrease,pad=%s:%s:(ow-iw)/2:(oh-ih)/2", size, size, size, size)

	return ffmpeg.Input(inputPath).
		Output(outputPath, ffmpeg.KwArgs{
			"vf":       vf,
			"r":        strconv.Itoa(SignVideoFPS),
			"an":       "",
			"c:v":      "libx264",
			"preset":   "fast",
			"crf":      strconv.Itoa(SignVideoCRF),
			"movflags": "+faststart",
		}).
		OverWriteOutput()
}

// ProcessSignVideo 执行转码，stderr 附在错误信息中
func ProcessSignVideo(ffmpegPath, inputPath, outputPath string) error {
	cmd, err := compile(ffmpegPath, SignVideoStream(inputPath, outputPath))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVideoProcessing, err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v: %s", ErrVideoProcessing, err, lastLine(stderr.String()))
	}
	return nil
}

// compile 生成命令并替换为配置的 ffmpeg 可执行文件
func compile(ffmpegPath string, stream *ffmpeg.Stream) (*exec.Cmd, error) {
	cmd := stream.Compile()
	if ffmpegPath == "" {
		return cmd, nil
	}
	bin, err := exec.LookPath(ffmpegPath)
	if err != nil {
		return nil, err
	}
	cmd.Path = bin
	return cmd, nil
}

// GeneratePoster 截取第一帧作为封面
func GeneratePoster(ffmpegPath, videoPath, posterPath string) error {
	stream := ffmpeg.Input(videoPath, ffmpeg.KwArgs{"ss": "0"}).
		Output(posterPath, ffmpeg.KwArgs{
			"vframes": "1",
			"q:v":     "2",
		}).
		OverWriteOutput()
	cmd, err := compile(ffmpegPath, stream)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// GetFFmpegVersion 获取FFmpeg版本信息，用于检查FFmpeg是否正确安装
func GetFFmpegVersion(ffmpegPath string) (string, error) {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	// ffmpeg-go 没有单独执行命令的接口，这里直接调用
	cmd := exec.Command(ffmpegPath, "-version", "-hide_banner")
	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg unavailable: %v, %s", err, errOut.String())
	}

	return strings.SplitN(out.String(), "\n", 2)[0], nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
