package lamp

import "image/color"

// markerColor 源下标越界时往目标像素里写的显眼标记色(品红)
// 越界在加载校验之后理论上到不了，真到了宁可花屏也不崩溃
var markerColor = color.RGBA{255, 0, 255, 255}

// Fill 把目标缓冲整个铺成一种颜色(背景清屏和降级纯色都走这里)
func Fill(dst []byte, c color.RGBA) {
	for i := 0; i+3 < len(dst); i += 4 {
		dst[i] = c.R
		dst[i+1] = c.G
		dst[i+2] = c.B
		dst[i+3] = c.A
	}
}

// Composite 把贴图里第 frame 帧(128x128 的竖块)用 source-over 混到目标缓冲上
// dst 是行优先 RGBA，逻辑尺寸固定 FrameSize x FrameSize
func Composite(dst []byte, sheet *SpriteSheet, frame int) {
	xOffset := frame * FrameSize
	for y := 0; y < FrameSize; y++ {
		for x := 0; x < FrameSize; x++ {
			di := (y*FrameSize + x) * 4
			si := (y*sheet.Width + xOffset + x) * 4

			if si < 0 || si+3 >= len(sheet.Pix) {
				dst[di] = markerColor.R
				dst[di+1] = markerColor.G
				dst[di+2] = markerColor.B
				dst[di+3] = markerColor.A
				continue
			}

			sr, sg, sb, sa := sheet.Pix[si], sheet.Pix[si+1], sheet.Pix[si+2], sheet.Pix[si+3]
			switch sa {
			case 0:
				// 全透明，目标保持原样
			case 255:
				dst[di] = sr
				dst[di+1] = sg
				dst[di+2] = sb
				dst[di+3] = 255
			default:
				// out = src*a + dst*(1-a)，整数截断到 8 位
				a := uint32(sa)
				inv := 255 - a
				dst[di] = uint8((uint32(sr)*a + uint32(dst[di])*inv) / 255)
				dst[di+1] = uint8((uint32(sg)*a + uint32(dst[di+1])*inv) / 255)
				dst[di+2] = uint8((uint32(sb)*a + uint32(dst[di+2])*inv) / 255)
				oa := (a*a + uint32(dst[di+3])*inv) / 255
				if oa > 255 {
					oa = 255
				}
				dst[di+3] = uint8(oa)
			}
		}
	}
}
