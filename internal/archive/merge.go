package archive

import (
	"fmt"
	"sort"

	"minagallery/internal/model"
	"minagallery/pkg/alias"
)

// Reconcile merges the two raw streams into the deduplicated, sorted
// gallery list. Pure derivation, re-run in full whenever input changes.
func Reconcile(generations, feedbacks []model.RawRecord) []model.NormalizedItem {
	likedIDs := make(map[string]bool)
	likedURLs := make(map[string]bool)
	var candidates []candidate

	for _, rec := range feedbacks {
		if !isLikeRecord(rec) {
			continue
		}
		if ref := alias.Resolve(rec, genRefAliases, ""); ref != "" {
			likedIDs[ref] = true
		}
		if u := likeURL(rec); u != "" {
			likedURLs[CanonicalURL(u)] = true
		}
	}

	for _, rec := range generations {
		if c, ok := normalizeGeneration(rec); ok {
			candidates = append(candidates, c)
		}
	}
	for _, rec := range feedbacks {
		if c, ok := normalizeFeedback(rec); ok {
			candidates = append(candidates, c)
		}
	}

	for i := range candidates {
		c := &candidates[i]
		if likedIDs[c.item.ID] || likedURLs[c.key] {
			c.item.Liked = true
		}
	}

	items := mergeCandidates(candidates)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = fmt.Sprintf("item-%d", i)
		}
		if items[i].Prompt != "" {
			items[i].CanRecreate = true
			items[i].Draft = BuildDraft(items[i])
		}
	}

	return items
}

// Winner per canonical URL is picked by a total order (rank desc,
// createdAt desc, id asc) so the merge is order-independent.
func mergeCandidates(candidates []candidate) []model.NormalizedItem {
	grouped := make(map[string]candidate, len(candidates))
	var order []string

	for _, c := range candidates {
		base, seen := grouped[c.key]
		if !seen {
			grouped[c.key] = c
			order = append(order, c.key)
			continue
		}

		winner, loser := base, c
		if outranks(c, base) {
			winner, loser = c, base
		}
		winner.item.Liked = winner.item.Liked || loser.item.Liked
		if winner.item.AspectRatio == "" {
			winner.item.AspectRatio = loser.item.AspectRatio
		}
		grouped[c.key] = winner
	}

	items := make([]model.NormalizedItem, 0, len(order))
	for _, key := range order {
		items = append(items, grouped[key].item)
	}
	return items
}

func outranks(a, b candidate) bool {
	if a.rank != b.rank {
		return a.rank > b.rank
	}
	if a.item.CreatedAt != b.item.CreatedAt {
		return a.item.CreatedAt > b.item.CreatedAt
	}
	return a.item.ID < b.item.ID
}
