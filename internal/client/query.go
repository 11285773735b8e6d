/*
Copyright © 2025 Ian Shuley

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package client

import (
	"net/url"
	"strconv"
	"strings"

	"tube-admin/pkg/users"
)

// queryFilter maps a recognized search prefix (e.g. "banned:") to a
// structured query parameter. The handler validates the raw value and
// may reject it, in which case the token is dropped entirely.
type queryFilter struct {
	prefix  string
	param   string
	handler func(value string) (string, bool)
}

// boolHandler accepts exactly "true" or "false".
func boolHandler(value string) (string, bool) {
	if value == "true" || value == "false" {
		return value, true
	}
	return "", false
}

// userListFilters are the filter prefixes the user listing understands.
var userListFilters = []queryFilter{
	{prefix: "banned:", param: "blocked", handler: boolHandler},
}

// parseSearchFilters splits a free-text search string into structured
// filter parameters and the residual plain-text search. Tokens that
// match a recognized prefix but fail validation are silently dropped.
func parseSearchFilters(search string, filters []queryFilter) (string, url.Values) {
	params := url.Values{}
	var residual []string

	for _, token := range strings.Fields(search) {
		matched := false
		for _, f := range filters {
			if !strings.HasPrefix(token, f.prefix) {
				continue
			}
			matched = true
			if value, ok := f.handler(strings.TrimPrefix(token, f.prefix)); ok {
				params.Set(f.param, value)
			}
			break
		}
		if !matched {
			residual = append(residual, token)
		}
	}

	return strings.Join(residual, " "), params
}

// buildListQuery merges pagination, sort and the parsed search state
// into the request's query parameters.
func buildListQuery(params users.ListParams) url.Values {
	residual, query := parseSearchFilters(params.Search, userListFilters)

	query.Set("start", strconv.Itoa(params.Pagination.Start))
	query.Set("count", strconv.Itoa(params.Pagination.Count))
	if sort := params.Sort.Param(); sort != "" {
		query.Set("sort", sort)
	}
	if residual != "" {
		query.Set("search", residual)
	}

	return query
}
