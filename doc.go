// Package cms is a small content management system: articles organized in
// categories and labeled with tags, promoted products, reader comments,
// and a JSON API plus a server rendered admin panel on top.
//
// Authentication:
//   - Credentials are bcrypt hashed and verified by the auth subpackage.
//     Logins mint short lived HS256 JWTs whose subject is the username.
//   - The same token rides two transports: an Authorization bearer header
//     for the JSON API and an HTTP-only cookie for the admin panel. Both
//     resolve through one verifier; only the extraction differs.
//   - Authorization is expressed as composable guards (Authenticated,
//     Active, Administrator, OwnerOrAdmin, NotSelf) declared per route.
//
// Storage:
//   - Models persist through Bun over sqlite. Repositories keep SQL out of
//     handlers and map missing rows onto package level sentinel errors.
package cms
