package app

import (
	"strconv"
	"strings"

	"github.com/James202017/real-estate-bots/core/telegram/format"
	tghelpers "github.com/James202017/real-estate-bots/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

const leadsDefaultLimit = 10

// handleLeads shows the operator the latest archived leads.
// Usage: /leads [n]
func (a *App) handleLeads(c tele.Context) error {
	if a.repo == nil {
		return tghelpers.SendText(c, "Архив заявок отключён.")
	}

	limit := leadsDefaultLimit
	if args := c.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	ctx := tghelpers.BuildContext(c)
	total, err := a.repo.Count(ctx, a.def.ID)
	if err != nil {
		return err
	}
	recent, err := a.repo.Recent(ctx, a.def.ID, limit)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(format.Bold("Заявки: " + strconv.FormatInt(total, 10)))
	if len(recent) == 0 {
		b.WriteString("\n\nПока нет ни одной заявки.")
		return tghelpers.SendHTML(c, b.String())
	}
	b.WriteString("\n")
	for _, lead := range recent {
		b.WriteString("\n#")
		b.WriteString(strconv.FormatInt(lead.ID, 10))
		b.WriteString(" · ")
		b.WriteString(lead.CreatedAt.Format("02.01.2006 15:04"))
		if lead.Username != "" {
			b.WriteString(" · @")
			b.WriteString(format.EscapeHTML(lead.Username))
		}
		b.WriteString("\n")
		for _, f := range lead.Payload {
			b.WriteString(format.EscapeHTML(f.Label))
			b.WriteString(": ")
			b.WriteString(format.EscapeHTML(f.Value))
			b.WriteString("\n")
		}
	}
	return tghelpers.SendHTML(c, b.String())
}
