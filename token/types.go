/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// DTCG token type identifiers. The set is open; these are the types the
// tooling treats specially.
const (
	TypeColor       = "color"
	TypeDimension   = "dimension"
	TypeFontFamily  = "fontFamily"
	TypeFontWeight  = "fontWeight"
	TypeDuration    = "duration"
	TypeCubicBezier = "cubicBezier"
	TypeNumber      = "number"
	TypeString      = "string"
	TypeShadow      = "shadow"
	TypeBorder      = "border"
	TypeGradient    = "gradient"
	TypeTypography  = "typography"
	TypeStrokeStyle = "strokeStyle"
	TypeTransition  = "transition"
)
