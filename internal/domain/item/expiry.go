package item

import "time"

// FallbackShelfLifeDays is assumed when neither an explicit expiry nor any
// shelf-life information is available for a line.
const FallbackShelfLifeDays = 3

// ComputeExpiry derives an item's expiry date. Priority: an explicit expiry
// supplied by the caller wins outright, then a shelf life in days added to the
// purchase date, then the fallback window. Calendar-day arithmetic only; the
// time-of-day component of purchaseDate is preserved as-is.
func ComputeExpiry(purchaseDate time.Time, explicitExpiry *time.Time, shelfLifeDays *int32) time.Time {
	if explicitExpiry != nil {
		return *explicitExpiry
	}
	if shelfLifeDays != nil {
		return purchaseDate.AddDate(0, 0, int(*shelfLifeDays))
	}
	return purchaseDate.AddDate(0, 0, FallbackShelfLifeDays)
}
