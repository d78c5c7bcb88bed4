package contextkeys

// Custom type so the key cannot collide with other context values.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (the pool, or a
// test transaction) is stored in the request context.
const DBContextKey = contextKey("db")
