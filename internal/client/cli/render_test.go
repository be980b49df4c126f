package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tamakara/booth/internal/client/models"
)

func TestFormatUser(t *testing.T) {
	name, avatar := "alice", "http://img/a.png"
	got := formatUser(&models.User{ID: 42, Username: &name, Balance: models.MustAmount("12.5"), AvatarURL: &avatar})
	assert.Equal(t, "User 42 alice\n  balance: 12.50\n  avatar:  http://img/a.png", got)

	assert.Equal(t, "User 7\n  balance: 0.00", formatUser(&models.User{ID: 7}))
}

func TestFormatPage(t *testing.T) {
	assert.Equal(t, "No items (page 3)", formatPage(&models.ItemPage{Current: 3, Size: 20}))

	p := &models.ItemPage{
		Records: []models.Item{{ID: 1, Name: "Desk", Price: models.MustAmount("100"), Postage: models.MustAmount("10")}},
		Total:   11, Current: 1, Size: 20,
	}
	assert.Equal(t, "#1  Desk  100.00 (+10.00 postage)\npage 1, 1 of 11 items", formatPage(p))
}

func TestFormatItem(t *testing.T) {
	it := &models.Item{ID: 7, Name: "Desk", Description: "Wood\ndesk", SellerID: 5, Favorites: 2,
		State: models.ItemStateSold, Images: []string{"a.jpg"}, IsSeller: true}
	assert.Equal(t,
		"#7  Desk  0.00 (+0.00 postage)  [yours]\n  state:     sold\n  seller:    5\n  favorites: 2\n  Wood\n  desk\n  image: a.jpg",
		formatItem(it))
}
