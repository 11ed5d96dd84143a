package core

// Entity is an opaque identity used to associate components
// Zero is never issued and reads as "no entity"
type Entity uint64
