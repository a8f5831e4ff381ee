package synth

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/getpostkit/postkit/pkg/postman"
)

// ExampleOptions controls mock example generation. Realistic switches every
// payload to {{$random...}} dynamic-variable tokens expanded by the mock
// server at serve time; it is a top-level switch, never decided per field.
type ExampleOptions struct {
	Realistic     bool
	IncludeErrors bool
}

// errorStatus describes one canned error example.
type errorStatus struct {
	code int
	text string
	msg  string
}

// errorStatuses is the fixed error set, in emission order. 404 is skipped
// for POST (creating a resource that does not exist yet cannot 404).
var errorStatuses = []errorStatus{
	{400, "Bad Request", "The request could not be understood or was missing required parameters"},
	{401, "Unauthorized", "Authentication failed or was not provided"},
	{404, "Not Found", "The requested resource could not be found"},
	{500, "Internal Server Error", "An unexpected error occurred on the server"},
}

// GenerateExamples builds mock examples for a request: exactly one success
// example, plus the canned error set when opts.IncludeErrors is set.
func GenerateExamples(name string, req *postman.Request, opts ExampleOptions) []postman.MockExample {
	method := strings.ToUpper(req.Method)
	rawURL := req.URL.String()

	examples := []postman.MockExample{
		successExample(name, method, rawURL, opts.Realistic),
	}

	if opts.IncludeErrors {
		for _, es := range errorStatuses {
			if es.code == 404 && method == "POST" {
				continue
			}
			examples = append(examples, errorExample(name, method, rawURL, es))
		}
	}

	return examples
}

// successExample shapes the success response by method and URL keywords.
func successExample(name, method, rawURL string, realistic bool) postman.MockExample {
	var (
		code int
		text string
		body any
	)

	switch method {
	case "POST":
		code, text = 201, "Created"
		body = createPayload(realistic)
	case "PUT", "PATCH":
		code, text = 200, "OK"
		body = updatePayload(realistic)
	case "DELETE":
		code, text = 204, "No Content"
	default:
		code, text = 200, "OK"
		switch {
		case strings.Contains(rawURL, "/users") || strings.Contains(rawURL, "/user"):
			body = listPayload("users", userPayload(realistic), realistic)
		case strings.Contains(rawURL, "/products") || strings.Contains(rawURL, "/product"):
			body = listPayload("products", productPayload(realistic), realistic)
		case strings.Contains(rawURL, "/orders") || strings.Contains(rawURL, "/order"):
			body = listPayload("orders", orderPayload(realistic), realistic)
		default:
			body = listPayload("data", genericPayload(realistic), realistic)
		}
	}

	ex := postman.MockExample{
		Name: name + " - Success",
		Request: postman.ExampleRequest{
			Method: method,
			URL:    rawURL,
		},
		Response: postman.ExampleResponse{
			Status:     code,
			StatusText: text,
		},
	}
	if body != nil {
		raw, _ := json.MarshalIndent(body, "", "  ")
		ex.Response.Body = string(raw)
		ex.Response.Language = "json"
		ex.Response.Headers = []postman.Header{
			{Key: "Content-Type", Value: "application/json"},
		}
	}
	return ex
}

// errorExample builds one canned error response.
func errorExample(name, method, rawURL string, es errorStatus) postman.MockExample {
	body, _ := json.MarshalIndent(map[string]any{
		"error":   es.text,
		"message": es.msg,
		"code":    es.code,
	}, "", "  ")

	return postman.MockExample{
		Name: name + " - " + es.text,
		Request: postman.ExampleRequest{
			Method: method,
			URL:    rawURL,
			Headers: []postman.Header{
				{Key: "x-mock-response-code", Value: strconv.Itoa(es.code)},
			},
		},
		Response: postman.ExampleResponse{
			Status:     es.code,
			StatusText: es.text,
			Headers: []postman.Header{
				{Key: "Content-Type", Value: "application/json"},
			},
			Body:     string(body),
			Language: "json",
		},
	}
}

// listPayload wraps a single item payload in a paginated list envelope.
func listPayload(key string, item any, realistic bool) map[string]any {
	total := any(42)
	if realistic {
		total = "{{$randomInt}}"
	}
	return map[string]any{
		key:     []any{item},
		"page":  1,
		"limit": 10,
		"total": total,
	}
}

func userPayload(realistic bool) map[string]any {
	if realistic {
		return map[string]any{
			"id":         "{{$randomUUID}}",
			"name":       "{{$randomFullName}}",
			"email":      "{{$randomEmail}}",
			"username":   "{{$randomUserName}}",
			"created_at": "{{$isoTimestamp}}",
			"active":     true,
		}
	}
	return map[string]any{
		"id":         "usr_123456",
		"name":       "John Doe",
		"email":      "user@example.com",
		"username":   "johndoe",
		"created_at": "2024-01-01T00:00:00Z",
		"active":     true,
	}
}

func productPayload(realistic bool) map[string]any {
	if realistic {
		return map[string]any{
			"id":          "{{$randomUUID}}",
			"name":        "{{$randomProductName}}",
			"description": "{{$randomLoremSentence}}",
			"price":       "{{$randomPrice}}",
			"in_stock":    true,
		}
	}
	return map[string]any{
		"id":          "prod_789012",
		"name":        "Sample Product",
		"description": "A sample product for testing",
		"price":       "19.99",
		"in_stock":    true,
	}
}

func orderPayload(realistic bool) map[string]any {
	if realistic {
		return map[string]any{
			"id":         "{{$randomUUID}}",
			"status":     "processing",
			"total":      "{{$randomPrice}}",
			"created_at": "{{$isoTimestamp}}",
		}
	}
	return map[string]any{
		"id":         "ord_345678",
		"status":     "processing",
		"total":      "59.97",
		"created_at": "2024-01-01T00:00:00Z",
	}
}

func genericPayload(realistic bool) map[string]any {
	if realistic {
		return map[string]any{
			"id":         "{{$randomUUID}}",
			"name":       "{{$randomWords}}",
			"created_at": "{{$isoTimestamp}}",
		}
	}
	return map[string]any{
		"id":         "12345",
		"name":       "Sample Item",
		"created_at": "2024-01-01T00:00:00Z",
	}
}

// createPayload is the POST success shape.
func createPayload(realistic bool) map[string]any {
	id := any("12345")
	created := any("2024-01-01T00:00:00Z")
	if realistic {
		id = "{{$randomUUID}}"
		created = "{{$isoTimestamp}}"
	}
	return map[string]any{
		"id":         id,
		"name":       "Sample Item",
		"status":     "active",
		"created_at": created,
		"message":    "Resource created successfully",
	}
}

// updatePayload is the PUT/PATCH success shape.
func updatePayload(realistic bool) map[string]any {
	id := any("12345")
	updated := any("2024-01-01T00:00:00Z")
	if realistic {
		id = "{{$randomUUID}}"
		updated = "{{$isoTimestamp}}"
	}
	return map[string]any{
		"id":         id,
		"status":     "active",
		"updated_at": updated,
		"message":    "Resource updated successfully",
	}
}
