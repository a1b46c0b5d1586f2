package lamp

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/png" // 必加，否则 image: unknown format
)

// FrameSize 单帧的边长(像素)：贴图高度必须等于它，宽度必须是它的整数倍
const FrameSize = 128

// DefaultExpectedFrames 名义帧数：贴图实际帧数和它不一致时会校正并告警一次
const DefaultExpectedFrames = 90

// ErrAssetNotFound 所有候选目录里都找不到贴图文件
var ErrAssetNotFound = errors.New("找不到贴图文件")

// DecodeError 文件存在但图片解码失败
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("解码贴图 %q 失败: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DimensionError 贴图尺寸不符合帧格式
// Axis 标明是高度还是宽度出的问题
type DimensionError struct {
	Path string
	Axis string // "height" 或 "width"
	Got  int
}

func (e *DimensionError) Error() string {
	if e.Axis == "height" {
		return fmt.Sprintf("贴图 %q 高度 %d 不等于帧高 %d", e.Path, e.Got, FrameSize)
	}
	return fmt.Sprintf("贴图 %q 宽度 %d 不是帧宽 %d 的有效倍数", e.Path, e.Got, FrameSize)
}

// SpriteSheet 一整条横向排列的动画贴图
// Pix 是行优先、直通 alpha 的 RGBA 连续缓冲，由加载器一次性填好，之后只读
type SpriteSheet struct {
	Pix    []byte
	Width  int
	Height int
}

// FrameCount 贴图自带的帧数(宽度 / 帧宽)
func (s *SpriteSheet) FrameCount() int { return s.Width / FrameSize }

// Loader 贴图加载器：解析路径 -> 解码 -> 校验尺寸 -> 归一化成 RGBA
type Loader struct {
	res      *Resolver
	diag     *Diag
	expected int
	strict   bool // 严格模式下宽度必须正好是 expected * FrameSize
}

// NewLoader 创建加载器，expected <= 0 时用默认名义帧数
func NewLoader(res *Resolver, diag *Diag, expected int, strict bool) *Loader {
	if expected <= 0 {
		expected = DefaultExpectedFrames
	}
	return &Loader{res: res, diag: diag, expected: expected, strict: strict}
}

// Load 按文件名加载并校验一张贴图
// 校验顺序固定：找不到 -> 解不开 -> 高度不对 -> 宽度不对，遇错即停
// 所有错误都是可恢复的，由上层的兜底策略接手
func (l *Loader) Load(name string) (*SpriteSheet, error) {
	path, ok := l.res.Resolve(name)
	if !ok {
		l.diag.Oncef("警告: 贴图 %q 在所有候选目录里都不存在", name)
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}

	file, err := os.Open(path)
	if err != nil {
		l.diag.Oncef("错误: 打开贴图 %q 失败: %v", path, err)
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		l.diag.Oncef("错误: 解码贴图 %q 失败: %v", path, err)
		return nil, &DecodeError{Path: path, Err: err}
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if h != FrameSize {
		l.diag.Oncef("错误: 贴图 %q 高度 %d 不等于帧高 %d", path, h, FrameSize)
		return nil, &DimensionError{Path: path, Axis: "height", Got: h}
	}
	if l.strict {
		if w != l.expected*FrameSize {
			l.diag.Oncef("错误: 贴图 %q 宽度 %d 不等于 %d*%d (严格模式)", path, w, l.expected, FrameSize)
			return nil, &DimensionError{Path: path, Axis: "width", Got: w}
		}
	} else if w < FrameSize || w%FrameSize != 0 {
		l.diag.Oncef("错误: 贴图 %q 宽度 %d 不是帧宽 %d 的整数倍", path, w, FrameSize)
		return nil, &DimensionError{Path: path, Axis: "width", Got: w}
	}

	// 统一转成 NRGBA：合成那边要按 alpha 加权，像素必须存直通(非预乘)形式，
	// 预乘格式会让 alpha 被乘两遍。没有 alpha 通道的源(灰度、调色板等)画过来就是全不透明
	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	return &SpriteSheet{Pix: nrgba.Pix, Width: w, Height: h}, nil
}
