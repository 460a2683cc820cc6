package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// AdminKey is a storage key under which every contract of the suite stores
// the administrator script hash.
const AdminKey = "admin"

// Administrator returns the administrator script hash stored by the current
// contract.
func Administrator(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, AdminKey).(interop.Hash160)
}

// IsAdministrator reports whether the given script hash is the stored
// administrator of the current contract.
func IsAdministrator(ctx storage.Context, caller interop.Hash160) bool {
	return BytesEqual(caller, Administrator(ctx))
}

// CheckAdminWitness panics with ErrAdminWitnessFailed unless the call is
// signed by the stored administrator.
func CheckAdminWitness(ctx storage.Context) {
	if !runtime.CheckWitness(Administrator(ctx)) {
		panic(ErrAdminWitnessFailed)
	}
}

// HasUpdateAccess returns true if contract code can be updated, i.e. if the
// call carries the administrator witness.
func HasUpdateAccess(ctx storage.Context) bool {
	return runtime.CheckWitness(Administrator(ctx))
}

// BytesEqual compares two slices of bytes by wrapping them into strings,
// which is necessary with new util.Equal interop behaviour, see neo-go#1176.
func BytesEqual(a []byte, b []byte) bool {
	return string(a) == string(b)
}
