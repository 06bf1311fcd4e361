// Copyright 2025 KrakLabs
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
//
// SPDX-License-Identifier: Apache-2.0

package sourcegraph

// SearchDocument is the GraphQL query sent for every search.
const SearchDocument = `query Search($query: String!, $version: SearchVersion!, $patternType: SearchPatternType!) {
  search(query: $query, version: $version, patternType: $patternType) {
    results {
      results {
        ... on FileMatch {
          __typename
          file {
            name
            path
            url
          }
          repository {
            name
            url
          }
          lineMatches {
            preview
            lineNumber
            offsetAndLengths
          }
        }
        ... on Repository {
          __typename
          name
          url
          description
        }
        ... on CommitSearchResult {
          __typename
          commit {
            oid
            message
            url
            author {
              person {
                name
                email
              }
            }
          }
        }
      }
      limitHit
      cloning {
        name
      }
      missing {
        name
      }
      timedout {
        name
      }
      matchCount
      approximateResultCount
      alert {
        title
        description
      }
    }
    stats {
      approximateResultCount
      sparkline
    }
  }
}`
