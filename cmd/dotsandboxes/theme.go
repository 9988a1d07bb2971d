package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"dotsandboxes/pkg/game"
)

var (
	LightThemeDotCanvasColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #FFFFFF
	DarkThemeDotCanvasColor  = color.NRGBA{R: 0xCA, G: 0xCA, B: 0xCA, A: 0xFF} // #CACACA
	LightThemeColor          = color.NRGBA{R: 0xF2, G: 0xF2, B: 0xF2, A: 0xFF} // #F2F2F2
	DarkThemeColor           = color.NRGBA{R: 0x2B, G: 0x2B, B: 0x2B, A: 0xFF} // #2B2B2B
	LightThemeButtonColor    = color.NRGBA{R: 0xD9, G: 0xD9, B: 0xD9, A: 0xFF} // #D9D9D9
	DarkThemeButtonColor     = color.NRGBA{R: 0x41, G: 0x41, B: 0x41, A: 0xFF} // #414141

	UnclaimedEdgeColor    = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x30}
	Player1HighlightColor = color.NRGBA{R: 0x40, G: 0x40, B: 0xFF, A: 0x80} // #4040FF80
	Player2HighlightColor = color.NRGBA{R: 0xFF, G: 0x40, B: 0x40, A: 0x80} // #FF404080
	Player1FilledColor    = color.NRGBA{R: 0x40, G: 0x40, B: 0xFF, A: 0x40} // #4040FF40
	Player2FilledColor    = color.NRGBA{R: 0xFF, G: 0x40, B: 0x40, A: 0x40} // #FF404040
)

// CurrentThemeVariant tracks the OS light/dark variant so canvas
// colors follow it.
var CurrentThemeVariant fyne.ThemeVariant

func highlightColor(t game.Turn) color.Color {
	if t == game.Player1 {
		return Player1HighlightColor
	}
	return Player2HighlightColor
}

func filledColor(t game.Turn) color.Color {
	if t == game.Player1 {
		return Player1FilledColor
	}
	return Player2FilledColor
}

func dotCanvasColor() color.Color {
	if CurrentThemeVariant == theme.VariantDark {
		return DarkThemeDotCanvasColor
	}
	return LightThemeDotCanvasColor
}

func themeColor() color.Color {
	if CurrentThemeVariant == theme.VariantDark {
		return DarkThemeColor
	}
	return LightThemeColor
}

func buttonColor() color.Color {
	if CurrentThemeVariant == theme.VariantDark {
		return DarkThemeButtonColor
	}
	return LightThemeButtonColor
}

// GameTheme implements fyne.Theme and repaints the board canvases when
// the system variant flips.
type GameTheme struct {
	ui *BoardUI
}

func (g *GameTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if CurrentThemeVariant != variant {
		CurrentThemeVariant = variant
		g.ui.applyThemeVariant()
	}

	switch name {
	case theme.ColorNameBackground:
		return themeColor()
	case theme.ColorNameButton:
		return buttonColor()
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (*GameTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (*GameTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (*GameTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
