// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package query filters, sorts and paginates in-memory record lists.

It is the local counterpart of the remote content API: given the same
[Options], [Apply] over the static snapshot is expected to produce what the
remote service would have returned.

Pipeline (order is fixed):

 1. Filter: strict equality on every filter key.
 2. Sort: stable, nulls last, locale-aware for strings.
 3. Paginate: only when both page and page size are set.

Fields are addressed by their JSON names (see package fieldpath), so the same
option values can be sent over the wire unchanged.
*/
package query
