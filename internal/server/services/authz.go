package services

import "github.com/dmitrijs2005/memorizer/internal/common"

// requireOwner is the single ownership check applied before every read or
// mutation of a user-owned resource. Keeping it in one place means a route
// cannot forget the comparison.
func requireOwner(callerID, ownerID string) error {
	if callerID != ownerID {
		return common.ErrorForbidden
	}
	return nil
}
