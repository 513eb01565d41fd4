package controller

import (
	"github.com/akarpovs/stockkeeper/internal/client/identity"
	"github.com/akarpovs/stockkeeper/internal/client/models"
)

// CanEditForm reports whether the session may mutate form fields at all.
// Unauthenticated sessions get a read-only form with a login prompt.
func CanEditForm(sess identity.Session) bool {
	return sess.Authenticated
}

// CanMutateItem reports whether the session may update or delete a specific
// item: authenticated and acting as the item's creator. Pure function of its
// inputs; callers must re-evaluate it on every action because the
// authentication mode can flip between actions.
func CanMutateItem(sess identity.Session, item models.Item) bool {
	return sess.Authenticated && sess.Username == item.CreatedBy
}
