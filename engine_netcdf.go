package hvsampledata

import (
	"context"

	"github.com/batchatco/go-native-netcdf/netcdf"
)

// loadNetCDF opens a NetCDF file and returns the root group (api.Group). The
// caller owns the handle and closes it.
//
// With NetCDFOptions.Variable set, a single materialized *api.Variable is
// returned instead and the group is closed here, mirroring a dataarray-style
// open.
func loadNetCDF(ctx context.Context, desc Descriptor, path string, lazy bool, opts EngineOptions) (any, error) {
	o := NetCDFOptions{}
	if opts != nil {
		o = opts.(NetCDFOptions)
	}

	nc, err := netcdf.Open(path)
	if err != nil {
		return nil, err
	}

	if o.Variable != "" {
		v, err := nc.GetVariable(o.Variable)
		nc.Close()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	return nc, nil
}
