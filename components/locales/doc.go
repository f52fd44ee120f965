// Package locales provides a deterministic list of translation locales,
// search helpers over their BCP 47 tags and English display names, and a
// small net/http handler that returns JSON options for language pickers.
//
// The default handler responds to GET and HEAD requests and supports query
// and limit parameters to filter results. The backing list is loaded from
// the embedded tag list under data/locale_tags.txt.
package locales
