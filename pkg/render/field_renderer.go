// pkg/render/field_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/system"
	"go-dodge-tejecks/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	bossBarWidth  = 200
	bossBarHeight = 20
	bossBarY      = 20
	hudX          = 10
	hudLine       = 18
)

// FieldRenderer рисует Snapshot ядра. Логики игры здесь нет.
type FieldRenderer struct {
	width, height int
	colors        FieldColors
	fillImg       *ebiten.Image
	fillVs        []ebiten.Vertex
	fillIs        []uint16
	face          font.Face
	background    *ebiten.Image
	bossBack      *ebiten.Image
	ammo          *ui.AmmoIndicator
	shields       *ui.ShieldIndicator
}

func NewFieldRenderer(width, height int, colors FieldColors) *FieldRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &FieldRenderer{
		width:   width,
		height:  height,
		colors:  colors,
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 8),
		fillIs:  make([]uint16, 0, 12),
		face:    basicfont.Face7x13,
		ammo:    ui.NewAmmoIndicator(hudX, 0),
		shields: ui.NewShieldIndicator(hudX, 0),
	}
	r.background = r.renderBackground(colors.Background)
	r.bossBack = r.renderBackground(colors.BossBackground)
	return r
}

// renderBackground предрендерит градиент полосами по 4 px.
func (r *FieldRenderer) renderBackground(top color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(r.width, r.height)
	for y := 0; y < r.height; y += 4 {
		vector.DrawFilledRect(img, 0, float32(y), float32(r.width), 4, gradientRow(top, y, r.height), false)
	}
	return img
}

// Draw рисует поле со сдвигом тряски и HUD поверх без сдвига.
func (r *FieldRenderer) Draw(screen *ebiten.Image, snap system.Snapshot) {
	if snap.HUD.BossMode {
		screen.DrawImage(r.bossBack, nil)
	} else {
		screen.DrawImage(r.background, nil)
	}
	for _, s := range snap.Sprites {
		s.X += snap.ShakeX
		s.Y += snap.ShakeY
		r.drawSprite(screen, s)
	}
	r.DrawHUD(screen, snap.HUD)
}

func (r *FieldRenderer) drawSprite(screen *ebiten.Image, s system.Sprite) {
	cx, cy := float32(s.X+s.W/2), float32(s.Y+s.H/2)
	c := WithAlpha(s.Color, s.Alpha)

	switch s.Kind {
	case system.SpritePlayer:
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), c, true)
		vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), 2, r.colors.Stroke, true)
		r.drawCenteredAt(screen, initials(s.Tag), int(cx), int(cy), r.colors.Text)
	case system.SpriteShieldAura:
		vector.StrokeCircle(screen, cx, cy, float32(s.W/2), 3, c, true)
		r.drawCenteredAt(screen, s.Tag, int(cx), int(s.Y)-4, s.Color)
	case system.SpriteEnemy:
		r.fillQuad(screen, s, s.Color)
	case system.SpritePowerUp:
		vector.DrawFilledCircle(screen, cx, cy, float32(s.W/2), c, true)
		r.drawCenteredAt(screen, s.Tag, int(cx), int(cy), r.colors.TextOnPickup)
	case system.SpriteLaser:
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), c, false)
	case system.SpriteFire:
		r.fillQuad(screen, s, s.Color)
		vector.DrawFilledCircle(screen, cx, cy, float32(s.W/4), r.colors.BarMid, true)
	case system.SpriteBoss:
		r.fillQuad(screen, s, s.Color)
		if s.Flash {
			vector.StrokeCircle(screen, cx, cy, float32(s.W/2)+10, 4, r.colors.HitFlash, true)
			vector.StrokeCircle(screen, cx, cy, float32(s.W/2)+5, 3, r.colors.HitFlashInner, true)
		}
	case system.SpriteExplosion:
		vector.StrokeCircle(screen, cx, cy, float32(s.W/2), 4, c, true)
	case system.SpriteParticle:
		vector.DrawFilledCircle(screen, cx, cy, float32(s.W/2), c, true)
	}
}

// fillQuad заливает повёрнутый прямоугольник спрайта.
func (r *FieldRenderer) fillQuad(screen *ebiten.Image, s system.Sprite, c color.RGBA) {
	pts := quadCorners(s.X, s.Y, s.W, s.H, s.Rotation)
	path := vector.Path{}
	path.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		path.LineTo(float32(p[0]), float32(p[1]))
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].SrcX = 0
		r.fillVs[i].SrcY = 0
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(s.Alpha)
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawHUD: счёт, таймеры бонусов, патроны с комбо, щиты и полоса босса.
func (r *FieldRenderer) DrawHUD(screen *ebiten.Image, h system.HUD) {
	lines := []string{
		"Level: " + h.Level,
		fmt.Sprintf("Score: %d", h.Score),
		fmt.Sprintf("Total: %d", h.Total),
		fmt.Sprintf("Ammo: %d/%d", h.Ammo, h.MaxAmmo),
	}
	if h.Combo > 0 {
		lines = append(lines, fmt.Sprintf("Combo: x%d", h.Combo))
	}
	if h.BossMode {
		lines = append(lines, fmt.Sprintf("Destroyed: %d", h.Destroyed))
	}
	for _, e := range h.Effects {
		lines = append(lines, fmt.Sprintf("%s %.1fs", strings.ToUpper(e.Type.String()), float64(e.Remaining)/config.FrameRate))
	}

	y, clr := hudLine, r.colors.Text
	if h.BossMode {
		y += bossBarY + 60
		clr = r.colors.TextLight
	}
	for _, l := range lines {
		text.Draw(screen, l, r.face, hudX, y, clr)
		y += hudLine
	}

	r.ammo.Y = float32(y - hudLine/2)
	r.ammo.Draw(screen, h.Ammo, h.MaxAmmo, h.Combo, config.MaxCombo)
	r.shields.Y = r.ammo.Y + r.ammo.Height() + 8
	r.shields.Draw(screen, h.Shields, config.MaxShields)

	if h.BossMode && h.BossMaxHealth > 0 {
		r.drawBossBar(screen, h)
	}
}

func (r *FieldRenderer) drawBossBar(screen *ebiten.Image, h system.HUD) {
	ratio := math.Max(0, float64(h.BossHealth)/float64(h.BossMaxHealth))
	x := float32(r.width/2 - bossBarWidth/2)
	y := float32(bossBarY)

	vector.DrawFilledRect(screen, x-2, y-2, bossBarWidth+4, bossBarHeight+4, r.colors.BarBack, false)
	vector.DrawFilledRect(screen, x, y, float32(bossBarWidth*ratio), bossBarHeight, r.colors.BarColor(ratio), false)
	vector.StrokeRect(screen, x-2, y-2, bossBarWidth+4, bossBarHeight+4, 2, r.colors.Stroke, false)

	r.drawCenteredAt(screen, "FINAL VIRTUAL EMDR TEJECK BOSS", r.width/2, bossBarY+bossBarHeight+18, r.colors.BossTitle)
	r.drawCenteredAt(screen, fmt.Sprintf("Phase %d", h.BossPhase), r.width/2, bossBarY+bossBarHeight+36, r.colors.BossPhase)
}

// DrawLines выводит строки по центру экрана начиная с y.
func (r *FieldRenderer) DrawLines(screen *ebiten.Image, lines []string, y int, clr color.Color) {
	for _, l := range lines {
		r.drawCenteredAt(screen, l, r.width/2, y, clr)
		y += hudLine + 4
	}
}

// DrawOverlay затемняет экран (пауза, итоги).
func (r *FieldRenderer) DrawOverlay(screen *ebiten.Image, alpha float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.width), float32(r.height), WithAlpha(color.RGBA{A: 255}, alpha), false)
}

// DrawBackground рисует фон без сущностей (меню).
func (r *FieldRenderer) DrawBackground(screen *ebiten.Image) {
	screen.DrawImage(r.background, nil)
}

func (r *FieldRenderer) drawCenteredAt(screen *ebiten.Image, s string, cx, cy int, clr color.Color) {
	if s == "" {
		return
	}
	b := text.BoundString(r.face, s)
	text.Draw(screen, s, r.face, cx-b.Dx()/2, cy+b.Dy()/2, clr)
}

// quadCorners: углы прямоугольника (x, y, w, h), повёрнутого на deg градусов
// вокруг центра, по часовой стрелке от левого верхнего.
func quadCorners(x, y, w, h, deg float64) [4][2]float64 {
	cx, cy := x+w/2, y+h/2
	sin, cos := math.Sincos(deg * math.Pi / 180)
	local := [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}
	var out [4][2]float64
	for i, p := range local {
		out[i] = [2]float64{cx + p[0]*cos - p[1]*sin, cy + p[0]*sin + p[1]*cos}
	}
	return out
}

// initials: первые буквы слов имени скина: "EMDR Tejeck" -> "ET".
func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(w[:1]))
	}
	return b.String()
}
