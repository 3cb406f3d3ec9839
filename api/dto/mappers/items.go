// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"mangawatch/api/dto/requests"
	"mangawatch/api/dto/responses"
	"mangawatch/core/domain"
)

// ToTrackedItem converts a registration request to a domain item
func ToTrackedItem(req *requests.RegisterItemRequest) domain.TrackedItem {
	notify := true
	if req.NotifyEnabled != nil {
		notify = *req.NotifyEnabled
	}

	return domain.TrackedItem{
		ID:               req.ID,
		Title:            req.Title,
		Thumbnail:        req.Thumbnail,
		URL:              req.URL,
		LatestChapter:    req.LatestChapter,
		LatestChapterNum: req.LatestChapterNum,
		LatestChapterURL: req.LatestChapterURL,
		LastUpdatedLabel: req.LastUpdatedLabel,
		NotifyEnabled:    notify,
	}
}

// ToItemResponse converts a domain item to its response DTO
func ToItemResponse(item *domain.TrackedItem) *responses.ItemResponse {
	if item == nil {
		return nil
	}

	return &responses.ItemResponse{
		ID:               item.ID,
		Title:            item.Title,
		Thumbnail:        item.Thumbnail,
		URL:              item.URL,
		LatestChapter:    item.LatestChapter,
		LatestChapterNum: item.LatestChapterNum,
		LatestChapterURL: item.LatestChapterURL,
		LastUpdatedLabel: item.LastUpdatedLabel,
		LastChecked:      item.LastChecked,
		Unread:           item.Unread,
		NotifyEnabled:    item.NotifyEnabled,
		CreatedAt:        item.CreatedAt,
	}
}

// ToItemResponses converts a list of domain items
func ToItemResponses(items []domain.TrackedItem) []responses.ItemResponse {
	out := make([]responses.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *ToItemResponse(&items[i]))
	}
	return out
}

// ToUpdateEntryResponse converts a ledger entry to its response DTO
func ToUpdateEntryResponse(entry *domain.UpdateEntry) *responses.UpdateEntryResponse {
	if entry == nil {
		return nil
	}

	return &responses.UpdateEntryResponse{
		ItemID:     entry.ItemID,
		Title:      entry.Title,
		Thumbnail:  entry.Thumbnail,
		URL:        entry.URL,
		OldChapter: entry.OldChapter,
		NewChapter: entry.NewChapter,
		DetectedAt: entry.DetectedAt,
		Read:       entry.Read,
	}
}

// ToUpdateEntryResponses converts the full ledger
func ToUpdateEntryResponses(entries []domain.UpdateEntry) []responses.UpdateEntryResponse {
	out := make([]responses.UpdateEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *ToUpdateEntryResponse(&entries[i]))
	}
	return out
}

// ToSettingsResponse converts domain settings to the response DTO
func ToSettingsResponse(settings domain.Settings) responses.SettingsResponse {
	return responses.SettingsResponse{
		CheckIntervalMinutes: settings.CheckIntervalMinutes,
		NotificationsEnabled: settings.NotificationsEnabled,
	}
}
