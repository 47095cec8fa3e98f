package application

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/seedscan/seedscan-daemon/internal/core/domain"
	"github.com/seedscan/seedscan-daemon/pkg/explorer"
	"github.com/seedscan/seedscan-daemon/pkg/hdwallet"
)

var (
	scansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "seedscan",
		Name:      "scans_total",
		Help:      "Number of completed wallet scans.",
	})
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seedscan",
		Name:      "address_lookups_total",
		Help:      "Number of explorer address lookups by network and outcome.",
	}, []string{"network", "outcome"})
)

// ExplorerFactory builds a per-request explorer backend for a network. The
// services are request-scoped because the API keys travel with the request.
type ExplorerFactory interface {
	NewService(
		network hdwallet.Network, keys domain.APIKeys,
	) (explorer.Service, error)
}

// ScannerService derives wallets from a seed phrase and checks each derived
// address against its network explorer.
type ScannerService struct {
	explorerFactory      ExplorerFactory
	maxConcurrentLookups int
	scanTimeout          time.Duration
}

// ScannerServiceOpts is the struct given to the NewScannerService method.
type ScannerServiceOpts struct {
	ExplorerFactory      ExplorerFactory
	MaxConcurrentLookups int
	// ScanTimeout bounds one whole scan. Zero means no deadline beyond the
	// caller's context.
	ScanTimeout time.Duration
}

func (o ScannerServiceOpts) validate() error {
	if o.ExplorerFactory == nil {
		return fmt.Errorf("explorer factory must not be null")
	}
	if o.MaxConcurrentLookups <= 0 {
		return fmt.Errorf("max concurrent lookups must be a positive number")
	}
	return nil
}

// NewScannerService returns a new ScannerService
func NewScannerService(opts ScannerServiceOpts) (*ScannerService, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &ScannerService{
		explorerFactory:      opts.ExplorerFactory,
		maxConcurrentLookups: opts.MaxConcurrentLookups,
		scanTimeout:          opts.ScanTimeout,
	}, nil
}

// Scan validates the request, derives the requested wallet cross-product and
// runs one bounded-concurrency explorer lookup per derived wallet. The
// returned report preserves derivation order; a fatal lookup marks its own
// wallet and never aborts the scan.
func (s *ScannerService) Scan(
	ctx context.Context, req domain.ScanRequest,
) (*domain.ScanReport, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	wallet, err := hdwallet.NewWalletFromMnemonic(hdwallet.NewWalletFromMnemonicOpts{
		Mnemonic:   req.SeedPhrase,
		Passphrase: req.Passphrase,
	})
	if err != nil {
		return nil, err
	}

	derived, err := wallet.DeriveWallets(hdwallet.DeriveWalletsOpts{
		Networks:              req.SelectedNetworks,
		AccountIndexes:        req.AccountIndices,
		AddressIndexes:        req.AddressIndices,
		BitcoinAddressFormats: req.BitcoinAddressTypes,
		ChangeSelectors:       req.ChangeTypes,
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("derived %d wallets, starting lookups", len(derived))

	services := s.servicesForNetworks(derived, req.APIKeys)

	if s.scanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.scanTimeout)
		defer cancel()
	}

	all := make([]domain.WalletReport, len(derived))
	g := &errgroup.Group{}
	g.SetLimit(s.maxConcurrentLookups)

	for i, dw := range derived {
		i, dw := i, dw
		g.Go(func() error {
			all[i] = domain.WalletReport{
				DerivedWallet: dw,
				AddressReport: s.lookup(ctx, services, dw),
			}
			return nil
		})
	}
	g.Wait()

	results := make([]domain.WalletReport, 0)
	for _, report := range all {
		if len(report.FatalError) <= 0 && report.HasFunds() {
			results = append(results, report)
		}
	}

	scansTotal.Inc()

	return &domain.ScanReport{
		Results:           results,
		AllDerivedWallets: all,
	}, nil
}

// servicesForNetworks builds one explorer backend per distinct network in the
// derived set. A network whose backend cannot be built is left out of the map
// and its wallets report a fatal lookup.
func (s *ScannerService) servicesForNetworks(
	derived []hdwallet.DerivedWallet, keys domain.APIKeys,
) map[hdwallet.Network]explorer.Service {
	services := make(map[hdwallet.Network]explorer.Service)
	for _, dw := range derived {
		if _, ok := services[dw.Network]; ok {
			continue
		}
		svc, err := s.explorerFactory.NewService(dw.Network, keys)
		if err != nil {
			log.WithError(err).Warnf(
				"no explorer backend for network %s", dw.Network,
			)
			continue
		}
		services[dw.Network] = svc
	}
	return services
}

func (s *ScannerService) lookup(
	ctx context.Context,
	services map[hdwallet.Network]explorer.Service,
	dw hdwallet.DerivedWallet,
) explorer.AddressReport {
	svc, ok := services[dw.Network]
	if !ok {
		lookupsTotal.WithLabelValues(string(dw.Network), "fatal").Inc()
		return *explorer.NewFatalReport(
			"", fmt.Errorf("no explorer backend configured for %s", dw.Network),
		)
	}

	report, err := svc.AddressReport(ctx, dw.Address)
	if err != nil {
		lookupsTotal.WithLabelValues(string(dw.Network), "fatal").Inc()
		log.WithError(err).Warnf(
			"lookup failed for %s address %s", dw.Network, dw.Address,
		)
		return *explorer.NewFatalReport("", err)
	}

	lookupsTotal.WithLabelValues(string(dw.Network), "ok").Inc()
	return *report
}
