package request

type CreateHouseholdRequest struct {
	Name string `json:"name" binding:"required"`
}
