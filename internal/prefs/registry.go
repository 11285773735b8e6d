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

package prefs

// The fixed preference keys.
const (
	KeyNSFWPolicy            = "nsfw_policy"
	KeyWebTorrentEnabled     = "webtorrent_enabled"
	KeyAutoPlayVideo         = "auto_play_video"
	KeyAutoPlayVideoPlaylist = "auto_play_video_playlist"
	KeyTheme                 = "theme"
	KeyVideoLanguages        = "video_languages"
	KeyAutoPlayNextVideo     = "auto_play_next_video"
)

// Domain selects which persistence store a key lives in.
type Domain int

const (
	// DomainDurable survives across sessions.
	DomainDurable Domain = iota

	// DomainSession lives only for the current session.
	DomainSession
)

// Codec names the string encoding of a stored value.
type Codec int

const (
	// CodecString stores the value verbatim.
	CodecString Codec = iota

	// CodecBool stores "true" or "false".
	CodecBool

	// CodecJSON stores a JSON-encoded value.
	CodecJSON
)

// Spec describes where a preference key is stored and how its value is
// encoded. Making the two domains and their encodings an explicit table
// keeps both testable and leaves no ad hoc setter closures around.
type Spec struct {
	Key    string
	Domain Domain
	Codec  Codec
}

// Registry enumerates every supported preference key. Keys absent from
// this table are silently ignored by profile updates.
var Registry = []Spec{
	{Key: KeyNSFWPolicy, Domain: DomainDurable, Codec: CodecString},
	{Key: KeyWebTorrentEnabled, Domain: DomainDurable, Codec: CodecBool},
	{Key: KeyAutoPlayVideo, Domain: DomainDurable, Codec: CodecBool},
	{Key: KeyAutoPlayVideoPlaylist, Domain: DomainDurable, Codec: CodecBool},
	{Key: KeyTheme, Domain: DomainDurable, Codec: CodecString},
	{Key: KeyVideoLanguages, Domain: DomainDurable, Codec: CodecJSON},
	{Key: KeyAutoPlayNextVideo, Domain: DomainSession, Codec: CodecBool},
}

// Lookup returns the spec for a key.
func Lookup(key string) (Spec, bool) {
	for _, spec := range Registry {
		if spec.Key == key {
			return spec, true
		}
	}
	return Spec{}, false
}

// WatchedKeys are the durable keys whose changes feed the anonymous
// preference change stream.
func WatchedKeys() []string {
	var keys []string
	for _, spec := range Registry {
		if spec.Domain == DomainDurable {
			keys = append(keys, spec.Key)
		}
	}
	return keys
}
