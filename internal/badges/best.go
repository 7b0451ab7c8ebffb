package badges

import "slices"

// BestSnackBadgeIDs keeps the highest-ranked snack badge per difficulty,
// sorted easy to hard. Other ids are dropped.
func BestSnackBadgeIDs(ids []string) []string {
	return bestOf(ids, FamilySnack)
}

// BestRegisterBadgeIDs keeps the highest-ranked register badge per grade
// and subject, sorted from the easiest grade and by subject order.
func BestRegisterBadgeIDs(ids []string) []string {
	return bestOf(ids, FamilyRegister)
}

// BestGameBadgeIDs reduces both families: snack badges first, then
// register badges.
func BestGameBadgeIDs(ids []string) []string {
	return append(BestSnackBadgeIDs(ids), BestRegisterBadgeIDs(ids)...)
}

func bestOf(ids []string, family Family) []string {
	best := make(map[string]Badge)
	for _, id := range ids {
		b, ok := Parse(id)
		if !ok || b.Family != family {
			continue
		}
		if cur, seen := best[b.Key]; !seen || b.Rank.Level() > cur.Rank.Level() {
			best[b.Key] = b
		}
	}

	kept := make([]Badge, 0, len(best))
	for _, b := range best {
		kept = append(kept, b)
	}
	slices.SortFunc(kept, compareBadges)

	out := make([]string, len(kept))
	for i, b := range kept {
		out[i] = b.ID()
	}
	return out
}

func compareBadges(a, b Badge) int {
	switch {
	case a.Snack != nil && b.Snack != nil:
		return a.Snack.Difficulty.order() - b.Snack.Difficulty.order()
	case a.Register != nil && b.Register != nil:
		if a.Register.Grade != b.Register.Grade {
			// Easiest grade (largest number) first.
			return int(b.Register.Grade) - int(a.Register.Grade)
		}
		return registerSubjectOrder(a.Register.Subject) - registerSubjectOrder(b.Register.Subject)
	case a.Snack != nil:
		return -1
	default:
		return 1
	}
}
