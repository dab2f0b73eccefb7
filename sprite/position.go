package sprite

import (
	"spritefn/css"
)

// Position is a CSS background-position pair, x then y.
type Position struct {
	X css.Length
	Y css.Length
}

// String renders the pair as a space-separated CSS value, e.g. "-7px -7px".
func (p Position) String() string {
	return p.X.String() + " " + p.Y.String()
}

// PositionOf computes the background-position needed to show entry from its
// sheet, with caller-supplied offsets applied on top of the entry's natural
// position. The entry must belong to the sheet; resolving a sprite name to
// an entry (and reporting unknown names) is the caller's responsibility.
//
// In pixel mode each axis is offset minus the entry offset, independent of
// sheet size. In percentage mode each axis is
// (offset + entry offset) / (sheet dimension - entry dimension) * 100,
// with a zero denominator clamped to 1 so a sprite that fills the sheet
// along an axis yields the offset magnitude instead of a division by zero.
// Exact-zero results are unit-less on either path.
func PositionOf(sheet Sheet, entry Sprite, offsetX, offsetY css.Length, usePercentages bool) Position {
	if usePercentages {
		return Position{
			X: percentAxis(offsetX, entry.Left, sheet.Width, entry.Width),
			Y: percentAxis(offsetY, entry.Top, sheet.Height, entry.Height),
		}
	}

	var x css.Length
	if offsetX.Unit == css.UnitPercent {
		x = passThroughPercentX(offsetX)
	} else {
		x = pixelAxis(offsetX, entry.Left)
	}
	return Position{
		X: x,
		Y: pixelAxis(offsetY, entry.Top),
	}
}

// percentAxis computes one axis of a percentage-mode position.
func percentAxis(offset css.Length, entryOffset, sheetDim, entryDim int) css.Length {
	denom := nonZeroOrDefault(float64(sheetDim-entryDim), 1)
	return css.LengthOf((offset.Value+float64(entryOffset))/denom*100, css.UnitPercent)
}

// pixelAxis computes one axis of a pixel-mode position.
func pixelAxis(offset css.Length, entryOffset int) css.Length {
	return css.LengthOf(offset.Value-float64(entryOffset), css.UnitPx)
}

// passThroughPercentX preserves historical behavior: a percent x-offset in
// pixel mode is returned verbatim and the sprite's horizontal offset is
// ignored. Questionable (shouldn't this be a percentage of the sheet
// width?), but changing it would silently move existing backgrounds.
func passThroughPercentX(offsetX css.Length) css.Length {
	return offsetX
}

// nonZeroOrDefault returns v unless it is exactly zero, in which case def is
// returned. Keeps percentage math well-defined without relying on
// floating-point infinities.
func nonZeroOrDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
