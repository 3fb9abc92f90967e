package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

var ErrAPI = errors.New("hbnb api")

// ErrorResponse describes the JSON the server responds with when a call
// fails, eg {"error": "Not found"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

func ToErrorFromResponse(resp *resty.Response) error {
	var errorResponse ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errorResponse); err != nil {
		return errors.Join(ErrAPI, fmt.Errorf("(HTTP Status: %d) - unable to parse json error response: %s", resp.StatusCode(), err))
	}

	return errors.Join(ErrAPI, fmt.Errorf("(HTTP Status: %d) - %s", resp.StatusCode(), errorResponse.Error))
}
