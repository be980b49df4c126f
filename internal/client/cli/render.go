package cli

import (
	"fmt"
	"strings"

	"github.com/tamakara/booth/internal/client/models"
)

var itemStateNames = map[int]string{
	models.ItemStateOnSale: "on sale",
	models.ItemStateSold:   "sold",
	models.ItemStateOff:    "off shelf",
}

func formatUser(u *models.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User %d", u.ID)
	if name := u.DisplayName(); name != "" {
		fmt.Fprintf(&b, " %s", name)
	}
	fmt.Fprintf(&b, "\n  balance: %s", u.Balance.StringFixed(2))
	if u.AvatarURL != nil && *u.AvatarURL != "" {
		fmt.Fprintf(&b, "\n  avatar:  %s", *u.AvatarURL)
	}
	return b.String()
}

func formatItemLine(it models.Item) string {
	line := fmt.Sprintf("#%d  %s  %s (+%s postage)", it.ID, it.Name, it.Price.StringFixed(2), it.Postage.StringFixed(2))
	if it.IsSeller {
		line += "  [yours]"
	}
	return line
}

func formatPage(p *models.ItemPage) string {
	if len(p.Records) == 0 {
		return fmt.Sprintf("No items (page %d)", p.Current)
	}
	lines := make([]string, 0, len(p.Records)+1)
	for _, it := range p.Records {
		lines = append(lines, formatItemLine(it))
	}
	lines = append(lines, fmt.Sprintf("page %d, %d of %d items", p.Current, len(p.Records), p.Total))
	return strings.Join(lines, "\n")
}

func formatItem(it *models.Item) string {
	var b strings.Builder
	b.WriteString(formatItemLine(*it))
	if state, ok := itemStateNames[it.State]; ok {
		fmt.Fprintf(&b, "\n  state:     %s", state)
	}
	fmt.Fprintf(&b, "\n  seller:    %d", it.SellerID)
	fmt.Fprintf(&b, "\n  favorites: %d", it.Favorites)
	if it.Description != "" {
		fmt.Fprintf(&b, "\n  %s", strings.ReplaceAll(it.Description, "\n", "\n  "))
	}
	for _, img := range it.Images {
		fmt.Fprintf(&b, "\n  image: %s", img)
	}
	return b.String()
}

func formatOrder(o *models.Order) string {
	return fmt.Sprintf("Order %d: item %d from seller %d, %s, paid %s, created %s",
		o.ID, o.ItemID, o.SellerID, o.OrderState, o.PayAmount.StringFixed(2), o.CreatedAt)
}
