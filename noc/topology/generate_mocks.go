//go:generate mockgen -destination=mock_channelallocator.go -package=topology -source=network.go ChannelAllocator

package topology
