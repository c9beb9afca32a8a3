package render

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/tripfinder-mcp/internal/filterstate"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// Empty-state copy shown when nothing matches.
const (
	EmptyTitle       = "Nenhum destino encontrado"
	EmptyDescription = "Tente ajustar seus filtros ou fazer uma nova busca para encontrar o destino perfeito."
)

// FavoriteChecker reports whether a destination is a favorite.
type FavoriteChecker interface {
	Contains(id int) bool
}

// Terminal writes results as lipgloss cards.
type Terminal struct {
	w         io.Writer
	favorites FavoriteChecker
	limit     int
	printer   *message.Printer
}

// NewTerminal creates a renderer writing to w. favorites may be nil.
// limit <= 0 prints every card.
func NewTerminal(w io.Writer, favorites FavoriteChecker, limit int) *Terminal {
	return &Terminal{
		w:         w,
		favorites: favorites,
		limit:     limit,
		printer:   message.NewPrinter(language.BrazilianPortuguese),
	}
}

// Render implements filterstate.Renderer.
func (t *Terminal) Render(_ context.Context, res filterstate.Result) error {
	var b strings.Builder

	b.WriteString(headerStyle.Render(t.header(res)))
	b.WriteString("\n")

	if len(res.Items) == 0 {
		b.WriteString(emptyStyle.Render(EmptyTitle + "\n" + subtleStyle.Render(EmptyDescription)))
		b.WriteString("\n")
		_, err := io.WriteString(t.w, b.String())
		return err
	}

	items := res.Items
	if t.limit > 0 && len(items) > t.limit {
		items = items[:t.limit]
	}
	for _, d := range items {
		b.WriteString(t.Card(d))
		b.WriteString("\n")
	}
	if hidden := len(res.Items) - len(items); hidden > 0 {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("+%d outros destinos", hidden)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *Terminal) header(res filterstate.Result) string {
	line := t.printer.Sprintf("%d destinos encontrados", len(res.Items))
	if res.Query != "" {
		line += fmt.Sprintf(" para %q", res.Query)
	}
	if res.ActiveFilters > 0 {
		line += t.printer.Sprintf(" · %d filtros ativos", res.ActiveFilters)
	}
	return line
}

// Card renders a single destination.
func (t *Terminal) Card(d types.Destination) string {
	heart := "♡"
	if t.favorites != nil && t.favorites.Contains(d.ID) {
		heart = favoriteStyle.Render("♥")
	}

	title := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(d.Title), " ", heart,
	)

	tags := make([]string, 0, len(d.Tags))
	for _, tag := range d.Tags {
		tags = append(tags, tagStyleFor(tag).Render("#"+tag))
	}

	footer := fmt.Sprintf("%s %s (%d)   %s%s",
		Stars(d.Rating),
		t.printer.Sprintf("%.1f", d.Rating),
		d.ReviewCount,
		priceStyle.Render(t.Price(d.Price)),
		subtleStyle.Render("/pessoa"),
	)

	lines := []string{
		title,
		subtleStyle.Render("📍 " + d.Location),
	}
	if len(tags) > 0 {
		lines = append(lines, strings.Join(tags, ""))
	}
	if d.Description != "" {
		lines = append(lines, d.Description)
	}
	lines = append(lines, footer)

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// Price formats an amount in reais with pt-BR digit grouping.
func (t *Terminal) Price(amount float64) string {
	if amount == math.Trunc(amount) {
		return t.printer.Sprintf("R$ %d", int64(amount))
	}
	return t.printer.Sprintf("R$ %.2f", amount)
}

// Stars returns one star per whole rating point.
func Stars(rating float64) string {
	n := int(math.Floor(rating))
	if n < 0 {
		n = 0
	}
	return strings.Repeat("⭐", n)
}

func tagStyleFor(tag string) lipgloss.Style {
	switch tag {
	case "Premium":
		return premiumTagStyle
	case "Guia":
		return guideTagStyle
	}
	return tagStyle
}
