package catalog

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ProductInput represents a candidate product payload. Price and Quantity
// are pointers so that an absent number is distinguishable from zero.
// Fields are declared in validation order: the first failing field wins.
type ProductInput struct {
	Name        string   `json:"name" validate:"notblank"`
	Color       string   `json:"color" validate:"notblank"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Quantity    *float64 `json:"quantity" validate:"required,gte=0"`
	ShopName    string   `json:"shopName" validate:"notblank"`
	Brand       string   `json:"brand" validate:"notblank"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
	Category    string   `json:"category" validate:"notblank"`
	Images      []string `json:"images" validate:"required,min=1"`
}

// productMessages maps a failing field (optionally field.tag) to the
// rejection reason surfaced to the client.
var productMessages = map[string]string{
	"Name":              "Product name is required and must be a non-empty string",
	"Color":             "Product color is required and must be a non-empty string",
	"Price.required":    "Price is required and must be a number",
	"Price.gt":          "Price must be greater than 0",
	"Quantity.required": "Quantity is required and must be a number",
	"Quantity.gte":      "Quantity cannot be negative",
	"ShopName":          "Shop name is required",
	"Brand":             "Brand is required",
	"Description":       "Description must be a string and less than 1000 characters",
	"Category":          "Category is required",
	"Images":            "At least one image is required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ValidateProduct checks a candidate product payload and returns a
// *ValidationError with the message of the first failing check, or nil.
// It has no side effects and never touches storage.
func ValidateProduct(in *ProductInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := productMessages[fe.StructField()+"."+fe.Tag()]; ok {
			return &ValidationError{Message: msg}
		}
		if msg, ok := productMessages[fe.StructField()]; ok {
			return &ValidationError{Message: msg}
		}
	}
	return &ValidationError{Message: "Invalid product payload"}
}
