package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// userObject picks the user object out of a response body: the "user"
// member when it is an object, the whole body otherwise.
func userObject(body []byte) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformedResponse)
	}

	res := gjson.ParseBytes(body)
	if u := res.Get("user"); u.IsObject() {
		return []byte(u.Raw), nil
	}
	if !res.IsObject() {
		return nil, fmt.Errorf("%w: expected a json object", ErrMalformedResponse)
	}
	return body, nil
}

func decodeUser(body []byte) (models.User, error) {
	raw, err := userObject(body)
	if err != nil {
		return models.User{}, err
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return u, nil
}

// decodeUserFields is decodeUser for partial responses. An empty body means
// nothing changed.
func decodeUserFields(body []byte) (models.UserFields, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return models.UserFields{}, nil
	}

	raw, err := userObject(body)
	if err != nil {
		return models.UserFields{}, err
	}

	var f models.UserFields
	if err := json.Unmarshal(raw, &f); err != nil {
		return models.UserFields{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return f, nil
}
