package validation

import (
	"github.com/localnerve/realtydash/internal/models"
)

// ValidateInsertProperty checks a POST /api/properties body against the
// property insert schema. id, createdAt and pricePerSqft are server-assigned
// and therefore unknown fields here.
func ValidateInsertProperty(body []byte) (models.InsertProperty, Violations) {
	raw, v := parseObject(body)
	if !v.Empty() {
		return models.InsertProperty{}, v
	}

	checkUnknown(raw, []string{
		"address", "price", "bedrooms", "bathrooms", "sqft",
		"marketPosition", "imageUrl", "status", "daysOnMarket",
	}, &v)

	insert := models.InsertProperty{
		Address:        requireString(raw, "address", &v),
		Price:          requireInt(raw, "price", &v),
		Bedrooms:       requireInt(raw, "bedrooms", &v),
		Bathrooms:      requireDecimal(raw, "bathrooms", &v),
		Sqft:           requireInt(raw, "sqft", &v),
		MarketPosition: requireString(raw, "marketPosition", &v),
		ImageURL:       optionalString(raw, "imageUrl", &v),
		Status:         stringWithDefault(raw, "status", models.PropertyStatusActive, &v),
		DaysOnMarket:   intWithDefault(raw, "daysOnMarket", 0, &v),
	}

	// price and sqft feed the pricePerSqft derivation, so zero is rejected
	if _, ok := raw["price"]; ok && insert.Price <= 0 {
		v.add("price", "must be positive")
	}
	if _, ok := raw["sqft"]; ok && insert.Sqft <= 0 {
		v.add("sqft", "must be positive")
	}
	if insert.MarketPosition != "" {
		checkLabel("marketPosition", insert.MarketPosition, []string{
			models.MarketPositionAbove, models.MarketPositionAverage, models.MarketPositionBelow,
		}, &v)
	}
	checkLabel("status", insert.Status, []string{
		models.PropertyStatusActive, models.PropertyStatusPending, models.PropertyStatusSold,
	}, &v)

	return insert, v
}

// ValidateInsertTeamActivity checks a POST /api/team-activity body. The
// referenced userId is not checked for existence; an orphaned entry simply
// drops out of joined reads.
func ValidateInsertTeamActivity(body []byte) (models.InsertTeamActivity, Violations) {
	raw, v := parseObject(body)
	if !v.Empty() {
		return models.InsertTeamActivity{}, v
	}

	checkUnknown(raw, []string{"userId", "action", "description", "relatedProperty"}, &v)

	insert := models.InsertTeamActivity{
		UserID:          requireInt(raw, "userId", &v),
		Action:          requireString(raw, "action", &v),
		Description:     requireString(raw, "description", &v),
		RelatedProperty: optionalString(raw, "relatedProperty", &v),
	}

	return insert, v
}

// ValidateInsertDocument checks a POST /api/documents body.
func ValidateInsertDocument(body []byte) (models.InsertDocument, Violations) {
	raw, v := parseObject(body)
	if !v.Empty() {
		return models.InsertDocument{}, v
	}

	checkUnknown(raw, []string{"name", "type", "sharedBy", "fileUrl"}, &v)

	insert := models.InsertDocument{
		Name:     requireString(raw, "name", &v),
		Type:     requireString(raw, "type", &v),
		SharedBy: requireInt(raw, "sharedBy", &v),
		FileURL:  optionalString(raw, "fileUrl", &v),
	}

	if insert.Type != "" {
		checkLabel("type", insert.Type, []string{
			models.DocumentTypePDF, models.DocumentTypeExcel, models.DocumentTypeWord, models.DocumentTypeOther,
		}, &v)
	}

	return insert, v
}

// ValidateInsertComment checks a POST /api/comments body.
func ValidateInsertComment(body []byte) (models.InsertComment, Violations) {
	raw, v := parseObject(body)
	if !v.Empty() {
		return models.InsertComment{}, v
	}

	checkUnknown(raw, []string{"userId", "content"}, &v)

	insert := models.InsertComment{
		UserID:  requireInt(raw, "userId", &v),
		Content: requireString(raw, "content", &v),
	}

	return insert, v
}
