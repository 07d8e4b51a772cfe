package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/MKhiriev/go-web-scaffold/models"
)

// userDTO is the wire shape of a user. Responses always use camelCase
// keys; requests may use camelCase or snake_case, and camelCase wins when
// both spellings of a field are present.
type userDTO struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	IsVerified bool   `json:"isVerified"`
}

func toUserDTO(u models.User) userDTO {
	return userDTO{
		Name:       u.Name,
		Age:        u.Age,
		IsVerified: u.IsVerified,
	}
}

func toUserDTOs(users []models.User) []userDTO {
	dtos := make([]userDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDTO(u))
	}
	return dtos
}

func decodeUser(r io.Reader) (models.User, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&fields); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidUserBody, err)
	}
	if fields == nil {
		return models.User{}, fmt.Errorf("%w: body must be an object", ErrInvalidUserBody)
	}

	var user models.User

	raw, err := lookupField(fields, "name", "name")
	if err != nil {
		return models.User{}, err
	}
	if err = json.Unmarshal(raw, &user.Name); err != nil {
		return models.User{}, fmt.Errorf("%w: name: %w", ErrInvalidUserBody, err)
	}

	if raw, err = lookupField(fields, "age", "age"); err != nil {
		return models.User{}, err
	}
	if user.Age, err = decodeAge(raw); err != nil {
		return models.User{}, err
	}

	if raw, err = lookupField(fields, "isVerified", "is_verified"); err != nil {
		return models.User{}, err
	}
	if err = json.Unmarshal(raw, &user.IsVerified); err != nil {
		return models.User{}, fmt.Errorf("%w: isVerified: %w", ErrInvalidUserBody, err)
	}

	return user, nil
}

// lookupField returns the non-null value stored under camel, falling back
// to snake.
func lookupField(fields map[string]json.RawMessage, camel, snake string) (json.RawMessage, error) {
	raw, ok := fields[camel]
	if !ok {
		raw, ok = fields[snake]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s is required", ErrInvalidUserBody, camel)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, fmt.Errorf("%w: %s must not be null", ErrInvalidUserBody, camel)
	}
	return raw, nil
}

// decodeAge accepts any JSON number with an integral value, so 30 and 30.0
// are both valid ages.
func decodeAge(raw json.RawMessage) (int, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil || !isJSONNumber(raw) {
		return 0, fmt.Errorf("%w: age must be an integer", ErrInvalidUserBody)
	}
	if i, err := n.Int64(); err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: age must be an integer", ErrInvalidUserBody)
	}
	return int(f), nil
}

// isJSONNumber rejects quoted numbers, which json.Number would otherwise accept.
func isJSONNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] != '"'
}
