package types

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CropAdviceRequest struct {
	SoilType          string `json:"soil_type" validate:"required"`
	Climate           string `json:"climate" validate:"required"`
	Season            string `json:"season" validate:"required"`
	WaterAvailability string `json:"water_availability" validate:"required"`
	LandSize          string `json:"land_size" validate:"required"`
}

type FertilizerAdviceRequest struct {
	CropType    string `json:"crop_type" validate:"required"`
	SoilType    string `json:"soil_type" validate:"required"`
	GrowthStage string `json:"growth_stage" validate:"required"`
	SoilPH      string `json:"soil_ph" validate:"required"`
}
