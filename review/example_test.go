// Copyright 2026 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package review_test

import (
	"encoding/json"
	"fmt"

	"rivaas.dev/record/review"
)

// ExampleFields demonstrates building a submission and encoding it as JSON.
func ExampleFields() {
	f := review.New().
		WithRating(5).
		WithTitle("Great").
		WithPhotoURL(1, "http://x/1.jpg")

	body, err := json.Marshal(f)
	if err != nil {
		_, _ = fmt.Printf("Error: %v\n", err)
		return
	}

	_, _ = fmt.Println(string(body))
	// Output: {"rating":5,"title":"Great","photourl_1":"http://x/1.jpg"}
}

// ExampleFields_UnmarshalJSON demonstrates decoding a submission.
func ExampleFields_UnmarshalJSON() {
	var f review.Fields
	body := `{"rating":5,"isrecommended":true,"contextdatavalue_Age":"25to34"}`
	if err := json.Unmarshal([]byte(body), &f); err != nil {
		_, _ = fmt.Printf("Error: %v\n", err)
		return
	}

	rating, _ := f.Rating()
	recommended, _ := f.IsRecommended()
	age, _ := f.Get(review.ContextDataValueKey("Age"))
	_, _ = fmt.Println(rating, recommended, age)
	// Output: 5 true 25to34
}
